package strategy

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/veylence/rpsbots/internal/game"
	"github.com/veylence/rpsbots/internal/tournament"
)

//go:embed prompts/make_move.txt
var makeMovePrompt string

const geminiMoveTimeout = 30 * time.Second

// geminiClient is shared by every Gemini instance in the process. Strategy
// instances are per game, but the underlying connection outlives them.
var geminiClient = sync.OnceValues(func() (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
})

// Gemini asks a Gemini model to choose each move from the opponent's
// history. Without an API key it fails at instantiation, which the engine
// scores as a forfeited game.
type Gemini struct {
	tournament.NoTraining
	model *genai.GenerativeModel
	tmpl  *template.Template
}

func NewGemini() (*Gemini, error) {
	client, err := geminiClient()
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("make_move").Parse(makeMovePrompt)
	if err != nil {
		return nil, err
	}
	return &Gemini{
		model: client.GenerativeModel("gemini-2.5-flash"),
		tmpl:  tmpl,
	}, nil
}

func (g *Gemini) MakeMove(opponent []game.Move) (game.Move, error) {
	history := make([]string, 0, len(opponent))
	for _, mv := range opponent {
		history = append(history, mv.String())
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, struct{ History string }{History: strings.Join(history, ", ")}); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), geminiMoveTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return 0, err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return 0, fmt.Errorf("unexpected response type from Gemini")
	}

	answer := strings.Trim(strings.TrimSpace(string(text)), "`.")
	return game.Parse(answer)
}
