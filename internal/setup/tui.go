// Package setup runs the interactive configuration wizard.
package setup

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/trex/config"
	"github.com/vadiminshakov/trex/internal/domain"
)

const (
	DefaultConfigFile = "trex.gen.yaml"
	wizardTitle       = "TREX CONFIG WIZARD"
)

// ErrCancelled is returned when the user declines to save.
var ErrCancelled = errors.New("setup cancelled by user")

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// Answers collected by the wizard.
type Answers struct {
	Mode       string
	BaseURL    string
	Timeout    string
	Retries    string
	Markets    string
	JournalDir string
	APIKey     string
	APISecret  string
}

func defaultAnswers() Answers {
	def := config.Default()
	return Answers{
		Mode:       def.Mode,
		BaseURL:    def.BaseURL,
		Timeout:    def.HTTPTimeout.String(),
		Retries:    strconv.Itoa(def.Retry.MaxRetries),
		Markets:    "BTC-LTC",
		JournalDir: def.JournalDir,
	}
}

func step(name string) {
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render(wizardTitle))
	fmt.Println(stepStyle.Render(name))
}

// RunTUI launches the wizard and writes configPath and envPath.
func RunTUI(configPath, envPath string) error {
	a := defaultAnswers()
	var confirm bool

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render(wizardTitle))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Point trex at your Bittrex account.\n"))

	fmt.Println(stepStyle.Render("STEP 1: MODE"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should orders be handled?").
				Options(
					huh.NewOption("Live (real orders)", config.ModeLive),
					huh.NewOption("Simulation (paper fills, live prices)", config.ModeSimulate),
				).
				Value(&a.Mode),
		),
	).Run()
	if err != nil {
		return err
	}

	step("STEP 2: CONNECTION")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API root").
				Description("Must end with a slash").
				Value(&a.BaseURL).
				Validate(validateBaseURL),
			huh.NewInput().
				Title("HTTP timeout").
				Description("Duration string (e.g. 10s, 30s)").
				Value(&a.Timeout).
				Validate(validateDuration),
			huh.NewInput().
				Title("Transport retries").
				Description("Attempts after the first on network failures (0 disables)").
				Value(&a.Retries).
				Validate(validateRetries),
		),
	).Run()
	if err != nil {
		return err
	}

	step("STEP 3: MARKETS")
	marketFields := []huh.Field{
		huh.NewInput().
			Title("Watched markets").
			Description("Comma separated, BASE-TARGET (e.g. BTC-LTC,BTC-ETH)").
			Value(&a.Markets).
			Validate(validateMarkets),
	}
	if a.Mode == config.ModeSimulate {
		marketFields = append(marketFields, huh.NewInput().
			Title("Fill journal directory").
			Value(&a.JournalDir))
	}
	err = huh.NewForm(huh.NewGroup(marketFields...)).Run()
	if err != nil {
		return err
	}

	step("STEP 4: CREDENTIALS")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API key").
				Description("Leave empty for public data only").
				Value(&a.APIKey),
			huh.NewInput().
				Title("API secret").
				Value(&a.APISecret).
				EchoMode(huh.EchoModePassword),
		),
	).Run()
	if err != nil {
		return err
	}

	step("FINAL CONFIRMATION")
	summary := fmt.Sprintf(
		"Mode: %s\nAPI: %s\nTimeout: %s\nRetries: %s\nMarkets: %s\nCredentials: %t\n",
		a.Mode, a.BaseURL, a.Timeout, a.Retries, a.Markets, a.APIKey != "",
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return ErrCancelled
	}

	if err := Save(a, configPath, envPath); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(
		fmt.Sprintf("\nConfiguration saved to %s, credentials to %s", configPath, envPath)))
	return nil
}

// Save writes the YAML config and, when a key is given, the .env credentials file.
func Save(a Answers, configPath, envPath string) error {
	cfgTmp, err := a.configTmp()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfgTmp)
	if err != nil {
		return errors.Wrap(err, "failed to generate yaml")
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to save config file")
	}

	if a.APIKey == "" {
		return nil
	}
	env := map[string]string{
		config.EnvAPIKey:    a.APIKey,
		config.EnvAPISecret: a.APISecret,
	}
	if err := godotenv.Write(env, envPath); err != nil {
		return errors.Wrap(err, "failed to save credentials")
	}

	return os.Chmod(envPath, 0o600)
}

func (a Answers) configTmp() (config.ConfigTmp, error) {
	timeout, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return config.ConfigTmp{}, errors.Wrap(err, "timeout")
	}
	retries, err := strconv.Atoi(a.Retries)
	if err != nil {
		return config.ConfigTmp{}, errors.Wrap(err, "retries")
	}

	cfgTmp := config.ConfigTmp{
		Mode:        a.Mode,
		BaseURL:     a.BaseURL,
		HTTPTimeout: timeout,
		MaxRetries:  &retries,
		Markets:     splitMarkets(a.Markets),
	}
	if a.Mode == config.ModeSimulate {
		cfgTmp.JournalDir = a.JournalDir
	}

	return cfgTmp, nil
}

func validateBaseURL(s string) error {
	if !strings.HasSuffix(s, "/") {
		return fmt.Errorf("must end with /")
	}
	return nil
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateRetries(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateMarkets(s string) error {
	for _, m := range splitMarkets(s) {
		if _, err := domain.ParsePair(m); err != nil {
			return err
		}
	}
	return nil
}

func splitMarkets(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
