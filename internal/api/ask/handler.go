package ask

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EduardoZeca/Professor-Bob/internal/entity"
	"github.com/EduardoZeca/Professor-Bob/internal/pkg/logger"
	"github.com/EduardoZeca/Professor-Bob/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const warmingUpMessage = "Servidor ocupado, a base de conhecimento ainda está sendo inicializada. Tente novamente em alguns instantes."

type Handler struct {
	usecase   AnswerUsecase
	readiness ReadinessProbe
}

func NewHandler(usecase AnswerUsecase, readiness ReadinessProbe) *Handler {
	return &Handler{
		usecase:   usecase,
		readiness: readiness,
	}
}

// Ask handles POST /perguntar - answer a student question
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Ask")

	if !h.readiness.Ready() {
		ctxzap.Warn(ctx, "question received before knowledge base is ready")
		response.Error(w, http.StatusServiceUnavailable, warmingUpMessage)
		return
	}

	var req entity.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctxzap.Info(ctx, "answering question",
		zap.String("subject", req.Subject),
		zap.String("topic", req.Topic),
		zap.Int("question_length", len(req.Text)),
	)

	answer, err := h.usecase.Answer(ctx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyQuestion) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		ctxzap.Error(ctx, "failed to answer question", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Ocorreu um erro interno ao processar sua pergunta.")
		return
	}

	response.Success(w, entity.AskResponse{Answer: answer})
}
