package answer

import (
	"context"
	"strings"

	"github.com/EduardoZeca/Professor-Bob/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// apologyAnswer is returned when the generation call fails or times out.
// Generation failures never propagate to the student as hard errors.
const apologyAnswer = "Desculpe, tive um problema ao tentar formular a resposta. Pode tentar perguntar de outra forma?"

// greetings short-circuit retrieval: short salutation questions are
// answered by the persona prompt alone, without corpus grounding.
var greetings = []string{"olá", "oi", "quem é você", "bom dia", "boa tarde", "boa noite"}

const greetingMaxWords = 5

type Usecase struct {
	retriever ContextRetriever
	generator Generator
	limit     int
	logger    *zap.Logger
}

func NewUsecase(retriever ContextRetriever, generator Generator, limit int, logger *zap.Logger) *Usecase {
	return &Usecase{
		retriever: retriever,
		generator: generator,
		limit:     limit,
		logger:    logger,
	}
}

// Answer runs the full question flow: retrieve grounding context, fill the
// master prompt and generate the final answer. Backend failures degrade to
// the apology string.
func (u *Usecase) Answer(ctx context.Context, req *entity.AskRequest) (string, error) {
	question := strings.TrimSpace(req.Text)
	if question == "" {
		return "", entity.ErrEmptyQuestion
	}

	var grounding string
	if isGreeting(question) {
		grounding = "N/A"
	} else {
		grounding = u.retriever.Retrieve(ctx, question, req.Subject, u.limit)
	}

	prompt := buildPrompt(grounding, question)

	answer, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		ctxzap.Error(ctx, "final answer generation failed", zap.Error(err))
		return apologyAnswer, nil
	}

	return answer, nil
}

// isGreeting reports whether a short question is a salutation or an
// identity question. Single-word greetings must match a whole word, so
// "foi" does not trigger on "oi".
func isGreeting(question string) bool {
	lowered := strings.ToLower(question)
	words := strings.Fields(lowered)
	if len(words) > greetingMaxWords {
		return false
	}

	for _, greeting := range greetings {
		if strings.ContainsRune(greeting, ' ') {
			if strings.Contains(lowered, greeting) {
				return true
			}
			continue
		}

		for _, word := range words {
			if strings.Trim(word, "?!.,") == greeting {
				return true
			}
		}
	}

	return false
}
