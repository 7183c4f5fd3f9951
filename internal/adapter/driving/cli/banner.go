package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/kandco/kco-finops-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$   /$$  /$$$$$$   /$$$$$$        /$$$$$$$$ /$$            /$$$$$$
        | $$  /$$/ /$$__  $$ /$$__  $$      | $$_____/|__/           /$$__  $$
        | $$ /$$/ | $$  \__/| $$  \ $$      | $$       /$$ /$$$$$$$ | $$  \ $$  /$$$$$$   /$$$$$$$
        | $$$$$/  | $$      | $$  | $$      | $$$$$   | $$| $$__  $$| $$  | $$ /$$__  $$ /$$_____/
        | $$  $$  | $$      | $$  | $$      | $$__/   | $$| $$  \ $$| $$  | $$| $$  \ $$|  $$$$$$
        | $$\  $$ | $$    $$| $$  | $$      | $$      | $$| $$  | $$| $$  | $$| $$  | $$ \____  $$
        | $$ \  $$|  $$$$$$/|  $$$$$$/      | $$      | $$| $$  | $$|  $$$$$$/| $$$$$$$/ /$$$$$$$/
        |__/  \__/ \______/  \______/       |__/      |__/|__/  |__/ \______/ | $$____/ |_______/
                                                                              | $$
                                                                              | $$
                                                                              |__/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("KCO FinOps (v%s)", formattedVersion)))
}
