package configurator

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-flex-kit/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	alertStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// Commands referenced in the guidance texts.
const (
	configCommand = "yarn run config"
	devCommand    = "yarn run dev"
)

func printExistingNotice(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nYou can also edit the variables directly from the file. "+
		"Remember to restart the application after editing the environment variables!\n\n",
		boldStyle.Render(".env file already exists!"))
}

func printSettings(w io.Writer, settings models.Settings) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Settings:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s=%s\n", k, settings[k])
	}
	fmt.Fprint(w, b.String())
}

func printAdvancedHeader(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render("Advanced settings:"))
}

func printSuccess(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n\nStart the Flex template application by running %s\n\n"+
		"Note that the .env file is a hidden file so it might not be visible directly in directory listing. "+
		"If you want to update the environment variables run %s again or edit the .env file directly. "+
		"Remember to restart the application after editing the environment variables!\n\n",
		successStyle.Render("Environment variables saved successfully!"),
		commandStyle.Render(devCommand),
		commandStyle.Render(configCommand))
}

func printMissingEnvFile(w io.Writer) {
	fmt.Fprintf(w, "\n\n%s\n\nSome environment variables are required before starting the app. "+
		"You can create the .env file and configure the variables by running %s\n\n",
		alertStyle.Render("You don't have required .env file!"),
		commandStyle.Render(configCommand))
}

// PrintError reports a failed run the way the rest of the flow reports
// validation problems.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("An error occurred due to: "+err.Error()))
}
