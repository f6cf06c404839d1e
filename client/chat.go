package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"texttosql/models"
)

// Session holds the in-memory chat transcript. The history is append-only
// until the user clears it and lives only as long as the process.
type Session struct {
	api      *API
	messages []models.ChatMessage
}

func NewSession(api *API) *Session {
	return &Session{api: api}
}

// Run drives the interactive chat loop until the user exits. Each question
// is one synchronous round trip: the prompt is not offered again until the
// previous response (or error) has been appended to the history.
func (s *Session) Run(ctx context.Context) error {
	if !s.api.CheckHealth(ctx) {
		pterm.Error.Println("Backend service is not available. Please check your backend connection.")
		pterm.Info.Printfln("Trying to connect to: %s", s.api.BaseURL())
		return fmt.Errorf("backend unreachable at %s", s.api.BaseURL())
	}

	pterm.DefaultHeader.Println("Text-to-SQL Chatbot")
	pterm.Println("Ask your question in natural language, and get a SQL result from the Chinook database.")
	pterm.Println("Commands: /schema  /examples  /clear  /exit")
	pterm.Println()

	s.showExamples(ctx)

	for {
		input, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("You").
			Show()
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "/exit", "/quit", "exit", "quit":
			pterm.Println("Bye!")
			return nil
		case "/clear":
			s.messages = nil
			pterm.Success.Println("Chat history cleared")
			continue
		case "/schema":
			s.showSchema(ctx)
			continue
		case "/examples":
			s.showExamples(ctx)
			continue
		}

		s.ask(ctx, input)
	}
}

// Messages returns the current transcript.
func (s *Session) Messages() []models.ChatMessage {
	return s.messages
}

func (s *Session) ask(ctx context.Context, question string) {
	s.messages = append(s.messages, models.ChatMessage{Role: "user", Content: question})

	spinner, _ := pterm.DefaultSpinner.Start("Thinking...")
	resp, err := s.api.Query(ctx, question)
	_ = spinner.Stop()

	if err != nil {
		errMsg := fmt.Sprintf("Connection error: %v", err)
		pterm.Error.Println(errMsg)
		s.messages = append(s.messages, models.ChatMessage{Role: "assistant", Content: errMsg})
		return
	}

	if resp.Success {
		pterm.Println(resp.Result)
		if resp.SQLQuery != "" {
			pterm.DefaultBox.
				WithTitle(pterm.NewStyle(pterm.FgCyan).Sprint("Generated SQL")).
				Println(resp.SQLQuery)
		}
		s.messages = append(s.messages, models.ChatMessage{
			Role:    "assistant",
			Content: resp.Result,
			SQL:     resp.SQLQuery,
		})
	} else {
		errMsg := resp.Error
		pterm.Error.Println(errMsg)
		if resp.SQLQuery != "" {
			pterm.DefaultBox.
				WithTitle(pterm.NewStyle(pterm.FgRed).Sprint("Generated SQL")).
				Println(resp.SQLQuery)
		}
		s.messages = append(s.messages, models.ChatMessage{
			Role:    "assistant",
			Content: errMsg,
			SQL:     resp.SQLQuery,
		})
	}
	pterm.Println()
}

func (s *Session) showSchema(ctx context.Context) {
	schema, err := s.api.GetSchema(ctx)
	if err != nil {
		pterm.Warning.Printfln("Unable to fetch database schema: %v", err)
		return
	}
	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Database Schema")).
		Println(strings.TrimSpace(schema))
	pterm.Println()
}

func (s *Session) showExamples(ctx context.Context) {
	examples, err := s.api.GetExamples(ctx)
	if err != nil || len(examples) == 0 {
		return
	}
	pterm.DefaultSection.Println("Example Questions")
	for _, ex := range examples {
		pterm.Println("  - " + ex)
	}
	pterm.Println()
}
