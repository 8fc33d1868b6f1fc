package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aquagest/internal/domain/state"
	"aquagest/pkg/logger"
)

// Canned answers used when the model cannot be reached. The rest of the
// system treats advisor output as display-only, so degraded answers are
// always safe to return.
const (
	fallbackAskEmpty   = "Desculpe, não consegui processar sua pergunta."
	fallbackAskError   = "Erro ao conectar com a inteligência artificial."
	fallbackPrediction = "Não foi possível gerar a previsão no momento."
	fallbackSuggestion = "Mantenha o estoque conforme a média histórica."
)

// Prediction is the structured demand-forecast answer.
type Prediction struct {
	PredictionSummary string   `json:"predictionSummary"`
	StockSuggestions  []string `json:"stockSuggestions"`
}

// Promotion is one suggested promotion.
type Promotion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Generator is the model surface the service needs. *Client implements it.
type Generator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
	GenerateJSON(ctx context.Context, system, prompt string, out any) error
}

// Service builds prompts from the current snapshot and shields callers
// from model failures.
type Service struct {
	gen Generator
}

// NewService creates the advisor service.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Ask answers a free-form operator question grounded in the snapshot.
// Never returns an error: failures come back as a canned answer.
func (s *Service) Ask(ctx context.Context, snap state.State, question string) string {
	stocks := make([]string, 0, len(snap.Products))
	for _, p := range snap.Products {
		stocks = append(stocks, fmt.Sprintf("%s: %d", p.Name, p.Stock))
	}

	system := fmt.Sprintf(`Você é o assistente inteligente da H Água, uma revenda de água e gás.
Dados Atuais:
- Clientes: %d
- Produtos em estoque: %s
- Vendas totais: %d
- Entregas hoje: %d

Responda de forma curta, prestativa e profissional.`,
		len(snap.Clients), strings.Join(stocks, ", "), len(snap.Sales), len(snap.Deliveries))

	answer, err := s.gen.GenerateText(ctx, system, question)
	if err != nil {
		logger.Warn(ctx, "advisor ask failed", "error", err)
		return fallbackAskError
	}
	if answer == "" {
		return fallbackAskEmpty
	}
	return answer
}

// PredictDemand forecasts the next 7 days from the sales history. Never
// returns an error: failures come back as the canned prediction.
func (s *Service) PredictDemand(ctx context.Context, snap state.State) Prediction {
	type saleLine struct {
		Date  string   `json:"date"`
		Total string   `json:"total"`
		Items []string `json:"items"`
	}

	history := make([]saleLine, 0, len(snap.Sales))
	for _, sale := range snap.Sales {
		items := make([]string, 0, len(sale.Items))
		for _, item := range sale.Items {
			items = append(items, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}
		history = append(history, saleLine{
			Date:  sale.Date.Format("2006-01-02"),
			Total: sale.Total.String(),
			Items: items,
		})
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		logger.Warn(ctx, "advisor prediction failed", "error", err)
		return fallbackPredictionAnswer()
	}

	system := fmt.Sprintf("Histórico: %s. Gere um resumo em JSON com campos: predictionSummary (string), stockSuggestions (array de strings).", historyJSON)
	prompt := "Analise este histórico de vendas e preveja a demanda para os próximos 7 dias. Retorne sugestões de estoque."

	var prediction Prediction
	if err := s.gen.GenerateJSON(ctx, system, prompt, &prediction); err != nil {
		logger.Warn(ctx, "advisor prediction failed", "error", err)
		return fallbackPredictionAnswer()
	}
	if prediction.PredictionSummary == "" {
		return fallbackPredictionAnswer()
	}
	return prediction
}

// SuggestPromotions proposes promotions from the current stock levels.
// Failures come back as an empty list.
func (s *Service) SuggestPromotions(ctx context.Context, snap state.State) []Promotion {
	productsJSON, err := json.Marshal(snap.Products)
	if err != nil {
		logger.Warn(ctx, "advisor promotions failed", "error", err)
		return []Promotion{}
	}

	system := "Crie promoções criativas para aumentar vendas de produtos parados ou combos."
	prompt := fmt.Sprintf("Sugira 3 promoções baseadas nos dados de estoque: %s", productsJSON)

	var promotions []Promotion
	if err := s.gen.GenerateJSON(ctx, system, prompt, &promotions); err != nil {
		logger.Warn(ctx, "advisor promotions failed", "error", err)
		return []Promotion{}
	}
	if promotions == nil {
		promotions = []Promotion{}
	}
	return promotions
}

func fallbackPredictionAnswer() Prediction {
	return Prediction{
		PredictionSummary: fallbackPrediction,
		StockSuggestions:  []string{fallbackSuggestion},
	}
}
