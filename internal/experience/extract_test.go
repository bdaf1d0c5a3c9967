package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_SeniorityPattern(t *testing.T) {
	titles := Extract("Worked as a Senior Software Engineer at Acme.")

	assert.Contains(t, titles, "Senior Software Engineer")
}

func TestExtract_DomainPattern(t *testing.T) {
	titles := Extract("DevOps Engineer with 5 years of experience.")

	assert.Contains(t, titles, "DevOps Engineer")
}

func TestExtract_LeadershipPattern(t *testing.T) {
	titles := Extract("Promoted to Director of Engineering in 2021.")

	assert.Contains(t, titles, "Director of Engineering")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	titles := Extract("SENIOR DATA ANALYST and junior backend developer")

	assert.Contains(t, titles, "SENIOR DATA ANALYST")
	assert.Contains(t, titles, "junior backend developer")
}

func TestExtract_OverlappingPatternsDeduplicated(t *testing.T) {
	// "Software Engineer" appears twice in the text and is matched by the
	// domain pattern both times; it must appear once
	titles := Extract("Software Engineer at Acme. Software Engineer at Beta.")

	count := 0
	for _, title := range titles {
		if title == "Software Engineer" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_NoTitles(t *testing.T) {
	titles := Extract("I enjoy long walks and gardening.")

	assert.Empty(t, titles)
}

func TestExtract_FirstSeenOrderStable(t *testing.T) {
	text := "Senior Software Engineer. Product Manager. Director of Platform."

	first := Extract(text)
	second := Extract(text)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
