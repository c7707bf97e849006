package constants

// NSQ topics for internal lifecycle events. Clients never consume these;
// state propagation to clients is polling only.
const (
	TopicMatchMatched    = "match.matched"
	TopicMatchCompleted  = "match.completed"
	TopicMatchCancelled  = "match.cancelled"
	TopicInstructionSent = "instruction.sent"
)
