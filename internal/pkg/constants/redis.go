package constants

// Redis key patterns used by the match coordinator
const (
	// KeyPairLock serializes request-match for one normalized username pair
	KeyPairLock = "match:pairlock:%s"

	// KeyDriverLocation stores a driver's last reported location hash
	KeyDriverLocation = "location:driver:%s"

	// KeyPassengerLocation stores a passenger's last reported location hash
	KeyPassengerLocation = "location:passenger:%s"

	// KeyActiveMatchDriver maps a driver id to their active match id
	KeyActiveMatchDriver = "match:active:driver:%s"

	// KeyActiveMatchPassenger maps a passenger id to their active match id
	KeyActiveMatchPassenger = "match:active:passenger:%s"
)

// Redis hash field names
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldGeohash   = "geohash"
	FieldTimestamp = "timestamp"
)
