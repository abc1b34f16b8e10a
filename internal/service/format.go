package service

import (
	"strings"

	"moments_pipeline/internal/domain"
)

const unsubscribeFooter = "\n📱 Reply STOP to unsubscribe"

// FormatBroadcastMessage renders the outbound text for a moment. The line
// order and content are a contract with the channel's rendering: recipients
// must be able to read everything without following a link.
func FormatBroadcastMessage(moment *domain.Moment, sponsorName string) string {
	sponsored := moment.IsSponsored && sponsorName != ""

	var b strings.Builder

	if sponsored {
		b.WriteString("📢 [Sponsored] Moment — " + moment.Region + "\n")
	} else {
		b.WriteString("📢 Moment — " + moment.Region + "\n")
	}

	b.WriteString(moment.Title + "\n\n")
	b.WriteString(moment.Content + "\n\n")

	b.WriteString("🏷️ " + moment.Category)
	if moment.Region != domain.RegionNational {
		b.WriteString(" • " + moment.Region)
	}
	b.WriteString("\n\n")

	if sponsored {
		b.WriteString("Brought to you by " + sponsorName + "\n")
	}

	if moment.ExternalLink != nil && *moment.ExternalLink != "" {
		b.WriteString("🌐 More info: " + *moment.ExternalLink + "\n")
	}

	b.WriteString(unsubscribeFooter)

	return b.String()
}
