package gateway

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/constants"
	"github.com/harlanda/taxiway/internal/pkg/models"
	nsqpkg "github.com/harlanda/taxiway/internal/pkg/nsq"
)

// InstructionGW publishes instruction lifecycle events over NSQ
type InstructionGW struct {
	producer *nsqpkg.Producer
}

// NewInstructionGW creates a new instruction gateway
func NewInstructionGW(producer *nsqpkg.Producer) *InstructionGW {
	return &InstructionGW{producer: producer}
}

// PublishInstructionSent publishes an instruction.sent event
func (g *InstructionGW) PublishInstructionSent(_ context.Context, event models.InstructionEvent) error {
	return g.producer.Publish(constants.TopicInstructionSent, event)
}
