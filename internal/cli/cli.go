// Package cli provides an interactive line-oriented front end over the
// account and conversion services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/demobank/bank_ledger_app/internal/core/domain"
	portssvc "github.com/demobank/bank_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// CLI reads commands from in and writes results to out. It shares the same
// service layer as the HTTP front end.
type CLI struct {
	accountService    portssvc.AccountSvcFacade
	conversionService portssvc.ConversionSvc
	in                io.Reader
	out               io.Writer
}

// New creates a CLI bound to the given services and streams.
func New(accountService portssvc.AccountSvcFacade, conversionService portssvc.ConversionSvc, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		accountService:    accountService,
		conversionService: conversionService,
		in:                in,
		out:               out,
	}
}

// Run reads commands until Quit or end of input.
func (c *CLI) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	c.printf("Welcome to the Bank Account CLI!\n")

	for {
		c.printf("Enter command: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "Quit") {
			c.printf("Goodbye!\n")
			return nil
		}

		parts := strings.Fields(input)
		switch parts[0] {
		case "NewAccount":
			c.handleNewAccount(ctx, parts)
		case "Deposit":
			c.handleDeposit(ctx, parts)
		case "Withdraw":
			c.handleWithdraw(ctx, parts)
		case "Balance":
			c.handleBalance(ctx, parts)
		case "Convert":
			c.handleConvert(ctx, parts)
		default:
			c.printf("Unknown command. Valid commands: NewAccount, Deposit, Withdraw, Balance, Convert, Quit\n")
		}
	}
}

func (c *CLI) handleNewAccount(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		c.printf("Usage: NewAccount [First Name] [Last Name] [Currency]\n")
		return
	}
	currency, err := domain.ParseCurrency(parts[3])
	if err != nil {
		c.printf("Invalid currency. Allowed: USD, EUR, RON\n")
		return
	}
	account, err := c.accountService.CreateAccount(ctx, parts[1], parts[2], currency)
	if err != nil {
		c.printf("Account creation failed: %v\n", err)
		return
	}
	c.printf("Account created. Account number: %s, Currency: %s\n", account.AccountID, account.Currency)
}

func (c *CLI) handleDeposit(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		c.printf("Usage: Deposit [Amount] [Currency] [Account number]\n")
		return
	}
	amount, err := parseAmount(parts[1])
	if err != nil {
		c.printf("Invalid deposit amount\n")
		return
	}
	currency, err := domain.ParseCurrency(parts[2])
	if err != nil {
		c.printf("Invalid currency. Allowed: USD, EUR, RON\n")
		return
	}
	account, err := c.accountService.Deposit(ctx, parts[3], amount, currency)
	if err != nil {
		c.printf("Deposit failed: %v\n", err)
		return
	}
	c.printf("Deposit successful. Account: %s, New balance: %s %s\n", account.FullName(), account.Balance, account.Currency)
}

func (c *CLI) handleWithdraw(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		c.printf("Usage: Withdraw [Amount] [Currency] [Account number]\n")
		return
	}
	amount, err := parseAmount(parts[1])
	if err != nil {
		c.printf("Invalid withdraw amount\n")
		return
	}
	currency, err := domain.ParseCurrency(parts[2])
	if err != nil {
		c.printf("Invalid currency. Allowed: USD, EUR, RON\n")
		return
	}
	account, err := c.accountService.Withdraw(ctx, parts[3], amount, currency)
	if err != nil {
		c.printf("Withdraw failed: %v\n", err)
		return
	}
	c.printf("Withdraw successful. Account: %s, New balance: %s %s\n", account.FullName(), account.Balance, account.Currency)
}

func (c *CLI) handleBalance(ctx context.Context, parts []string) {
	if len(parts) != 2 {
		c.printf("Usage: Balance [Account number]\n")
		return
	}
	account, err := c.accountService.GetAccountByID(ctx, parts[1])
	if err != nil {
		c.printf("Account not found.\n")
		return
	}
	c.printf("Account holder: %s, Balance: %s %s\n", account.FullName(), account.Balance, account.Currency)
}

func (c *CLI) handleConvert(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		c.printf("Usage: Convert [Amount] [Currency_1] [Currency_2]\n")
		return
	}
	amount, err := parseAmount(parts[1])
	if err != nil {
		c.printf("Invalid amount format. Use e.g. 5.0 or 5,0\n")
		return
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		c.printf("Amount must be positive.\n")
		return
	}
	from, err := domain.ParseCurrency(parts[2])
	if err != nil {
		c.printf("Invalid currency. Allowed: USD, EUR, RON\n")
		return
	}
	to, err := domain.ParseCurrency(parts[3])
	if err != nil {
		c.printf("Invalid currency. Allowed: USD, EUR, RON\n")
		return
	}
	conversion, err := c.conversionService.ConvertWithDetails(ctx, from, to, amount)
	if err != nil {
		c.printf("Conversion failed: %v\n", err)
		return
	}
	c.printf("%s %s = %s %s (Rate: %s)\n", conversion.Amount, conversion.From, conversion.ConvertedAmount, conversion.To, conversion.Rate)
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// parseAmount accepts both dot and comma decimal separators.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}
