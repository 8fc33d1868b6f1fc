package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquagest/internal/core/types"
	"aquagest/internal/domain/state"
)

type stubGenerator struct {
	text       string
	jsonAnswer string
	err        error

	lastSystem string
	lastPrompt string
}

func (g *stubGenerator) GenerateText(_ context.Context, system, prompt string) (string, error) {
	g.lastSystem = system
	g.lastPrompt = prompt
	return g.text, g.err
}

func (g *stubGenerator) GenerateJSON(_ context.Context, system, prompt string, out any) error {
	g.lastSystem = system
	g.lastPrompt = prompt
	if g.err != nil {
		return g.err
	}
	return json.Unmarshal([]byte(g.jsonAnswer), out)
}

func snapshot() state.State {
	s := state.Empty()
	s.Clients = []state.Client{{ID: "c1", Name: "Maria"}}
	s.Products = []state.Product{
		{ID: "p1", Name: "Galão 20L", Stock: 50, Price: types.MustMoney("14.99")},
		{ID: "p2", Name: "Gás P13", Stock: 2, Price: types.MustMoney("115.00")},
	}
	return s
}

func TestAsk_PromptCarriesSnapshotSummary(t *testing.T) {
	gen := &stubGenerator{text: "Tudo certo!"}
	svc := NewService(gen)

	answer := svc.Ask(context.Background(), snapshot(), "Como está o estoque?")

	assert.Equal(t, "Tudo certo!", answer)
	assert.Equal(t, "Como está o estoque?", gen.lastPrompt)
	assert.Contains(t, gen.lastSystem, "Galão 20L: 50")
	assert.Contains(t, gen.lastSystem, "Gás P13: 2")
	assert.Contains(t, gen.lastSystem, "Clientes: 1")
}

func TestAsk_FallbackOnError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("network down")}
	svc := NewService(gen)

	answer := svc.Ask(context.Background(), snapshot(), "pergunta")

	assert.Equal(t, fallbackAskError, answer)
}

func TestAsk_FallbackOnEmptyAnswer(t *testing.T) {
	gen := &stubGenerator{text: ""}
	svc := NewService(gen)

	answer := svc.Ask(context.Background(), snapshot(), "pergunta")

	assert.Equal(t, fallbackAskEmpty, answer)
}

func TestPredictDemand(t *testing.T) {
	gen := &stubGenerator{
		jsonAnswer: `{"predictionSummary":"Alta demanda de água","stockSuggestions":["Reponha Galão 20L"]}`,
	}
	svc := NewService(gen)

	s := snapshot()
	s.Sales = []state.Sale{{
		ID: "s1", ClientName: "Maria", Total: types.MustMoney("29.98"),
		Items: []state.SaleItem{{ProductID: "p1", Name: "Galão 20L", Quantity: 2}},
	}}

	prediction := svc.PredictDemand(context.Background(), s)

	assert.Equal(t, "Alta demanda de água", prediction.PredictionSummary)
	require.Len(t, prediction.StockSuggestions, 1)
	assert.True(t, strings.Contains(gen.lastSystem, "Galão 20L x2"))
}

func TestPredictDemand_FallbackOnError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("timeout")}
	svc := NewService(gen)

	prediction := svc.PredictDemand(context.Background(), snapshot())

	assert.Equal(t, fallbackPrediction, prediction.PredictionSummary)
	assert.Equal(t, []string{fallbackSuggestion}, prediction.StockSuggestions)
}

func TestSuggestPromotions(t *testing.T) {
	gen := &stubGenerator{
		jsonAnswer: `[{"title":"Combo Família","description":"2 galões + 1 gás com desconto"}]`,
	}
	svc := NewService(gen)

	promotions := svc.SuggestPromotions(context.Background(), snapshot())

	require.Len(t, promotions, 1)
	assert.Equal(t, "Combo Família", promotions[0].Title)
}

func TestSuggestPromotions_EmptyOnError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("quota exceeded")}
	svc := NewService(gen)

	promotions := svc.SuggestPromotions(context.Background(), snapshot())

	assert.NotNil(t, promotions)
	assert.Empty(t, promotions)
}
