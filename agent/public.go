package agent

import (
	"context"
	"time"

	"github.com/mrtz/pocketbook"
	"github.com/mrtz/pocketbook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAdvisor creates the personal finance advisor expert. It reads the book
// through function calls, so its answers always reflect the current state,
// reversals and sweeps included.
func NewAdvisor(book *pocketbook.Book) *Expert {
	lib := []Function{dashboardFunc(book), reportFunc(book), transactionsFunc(book)}

	return &Expert{
		Name: "Advisor",
		Description: `The personal finance advisor. It can read the user's book:
		the dashboard, period reports and the raw transaction listing.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal finance advisor in charge of the user's pocketbook.
			The book records the user's income and expenses; everything else is derived from it.

			Use the available tools to ground every figure you mention:
			  - Dashboard for the balance, the month's totals, goal progress and insights
			  - Report for the transactions of a given period
			  - Transactions for the raw listing, reversed ones included

			Be concrete and brief. Talk about the user's own numbers, not generic advice.
			When the user asks about a surprising figure, check the transactions before answering.

			The book as of the start of this conversation:

` + renderer.Dashboard(book.Dashboard(time.Now())) + `
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func dashboardFunc(book *pocketbook.Book) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dashboard",
			Description: `Dashboard returns the current state of the book: overall balance,
			this month's income and expenses by category, goal progress and the derived insights.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "Dashboard", renderer.Dashboard(book.Dashboard(time.Now())))
		},
	}
}

func reportFunc(book *pocketbook.Book) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Report",
			Description: `Report returns the active transactions of a period window anchored
			on today, with their totals and expense breakdown.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"period": {
						Type:        genai.TypeString,
						Description: "One of daily, weekly, monthly, yearly. Defaults to monthly.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted period report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			period := pocketbook.Monthly
			if s, ok := args["period"].(string); ok && s != "" {
				var err error
				if period, err = pocketbook.ParsePeriod(s); err != nil {
					return errorResponse(id, "Report", err)
				}
			}
			return outputResponse(id, "Report", renderer.Report(book.Report(period, time.Now())))
		},
	}
}

func transactionsFunc(book *pocketbook.Book) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions returns the raw transaction listing, newest first,
			including reversed transactions still in their grace period.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted transaction table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var all []pocketbook.Transaction
			for tx := range book.Ledger().Transactions() {
				all = append(all, tx)
			}
			return outputResponse(id, "Transactions", renderer.Transactions(all))
		},
	}
}
