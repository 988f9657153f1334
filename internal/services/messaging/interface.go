package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetTurnMessage returns a message describing a resolved turn
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetGameOverMessage returns a message announcing the winner
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
