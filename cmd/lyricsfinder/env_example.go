package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const sectionRule = "# -----------------------------------------------------------------------------\n"

func generateEnvExample(cmd *cobra.Command) error {
	fmt.Println("Generating .env.example file from current configuration...")

	content := generateEnvExampleContent(cmd)

	if err := os.WriteFile(".env.example", []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write .env.example: %w", err)
	}

	fmt.Println("Successfully generated .env.example file")
	return nil
}

func generateEnvExampleContent(cmd *cobra.Command) string {
	var content strings.Builder

	content.WriteString("# =============================================================================\n")
	content.WriteString("# lyricsfinder Configuration\n")
	content.WriteString("# =============================================================================\n")
	content.WriteString("#\n")
	content.WriteString("# Copy this file to .env and update with your values\n")
	content.WriteString("# All environment variables have CLI flag equivalents (use --help to see them)\n")
	content.WriteString("#\n")
	fmt.Fprintf(&content, "# Format: %s_<SECTION>_<SETTING>=value\n", envPrefix)
	content.WriteString("# CLI equivalent: --<section>-<setting>\n")
	content.WriteString("#\n")
	content.WriteString("# =============================================================================\n\n")

	writeSection(&content, cmd, "Lyrics Providers",
		"genius-api-key", "genius-base-url", "lyrics-ovh-base-url", "lrclib-enabled", "lrclib-base-url")
	writeSection(&content, cmd, "Link Metadata (Spotify credentials are optional)",
		"youtube-oembed-url", "spotify-client-id", "spotify-client-secret", "spotify-oembed-url", "spotify-api-base-url")
	writeSection(&content, cmd, "Lookup",
		"lookup-timeout")
	writeSection(&content, cmd, "Server (PORT is honoured when set)",
		"server-host", "server-port", "server-read-timeout", "server-write-timeout")
	writeSection(&content, cmd, "Logging",
		"log-level")

	return content.String()
}

func writeSection(content *strings.Builder, cmd *cobra.Command, title string, flagNames ...string) {
	content.WriteString(sectionRule)
	fmt.Fprintf(content, "# %s\n", title)
	content.WriteString(sectionRule)
	fmt.Fprintf(content, "# CLI: --%s\n", strings.Join(flagNames, ", --"))

	for _, name := range flagNames {
		usage := ""
		if f := cmd.PersistentFlags().Lookup(name); f != nil {
			usage = f.Usage
		}
		fmt.Fprintf(content, "%s=%s  # %s\n", flagToEnvVar(name), getDefaultValueString(cmd, name), usage)
	}
	content.WriteString("\n")
}

func flagToEnvVar(flagName string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func getDefaultValueString(cmd *cobra.Command, flagName string) string {
	if f := cmd.PersistentFlags().Lookup(flagName); f != nil {
		return f.DefValue
	}
	return ""
}
