package ask

import (
	"context"

	"github.com/EduardoZeca/Professor-Bob/internal/entity"
)

type AnswerUsecase interface {
	Answer(ctx context.Context, req *entity.AskRequest) (string, error)
}

// ReadinessProbe reports whether the knowledge base finished initializing.
type ReadinessProbe interface {
	Ready() bool
}
