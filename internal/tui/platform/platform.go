package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ValidateChapterURL accepts only absolute http(s) links.
func ValidateChapterURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("lokalavdelningen saknar länk")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("ogiltig länk")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("länktypen stöds inte: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("länken saknar värd")
	}
	return trimmed, nil
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func OpenURLInBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	return exec.Command(name, args...).Run()
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func CopyURLToClipboard(url string) error {
	if err := writeClipboard(url); err != nil {
		return fmt.Errorf("kunde inte kopiera länken: %w", err)
	}
	return nil
}
