package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPestKeywordPerLanguage(t *testing.T) {
	cases := map[string]string{
		"hi-IN": "मेरी फसल में कीड़े हैं",
		"kn-IN": "ನನ್ನ ಬೆಳೆಯಲ್ಲಿ ಕೀಟ ಇದೆ",
		"ta-IN": "என் பயிரில் பூச்சி உள்ளது",
	}

	for lang, transcript := range cases {
		assert.Equal(t, CategoryPests, Classify(Normalize(transcript), lang), "language %s", lang)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// A transcript matching both pest and irrigation keywords always
	// classifies as pests; weather outranks everything except pests.
	assert.Equal(t, CategoryPests, Classify(Normalize("कीड़े और पानी"), "hi-IN"))
	assert.Equal(t, CategoryWeather, Classify(Normalize("मौसम में पानी"), "hi-IN"))
	assert.Equal(t, CategoryPests, Classify(Normalize("पानी कीड़े मौसम"), "hi-IN"))
}

func TestClassifyEnglishKeywordsInRegionalTables(t *testing.T) {
	assert.Equal(t, CategoryPests, Classify(Normalize("there is an INSECT on my crop"), "hi-IN"))
	assert.Equal(t, CategoryWeather, Classify(Normalize("what is the weather"), "ta-IN"))
}

func TestClassifyEmptyTranscript(t *testing.T) {
	assert.Equal(t, CategoryDefault, Classify("", "hi-IN"))
}

func TestClassifyUnknownLanguage(t *testing.T) {
	assert.Equal(t, CategoryDefault, Classify(Normalize("मौसम"), "fr-FR"))
	assert.Equal(t, CategoryDefault, Classify(Normalize("weather"), "en-IN"))
}

func TestClassifyNoMatch(t *testing.T) {
	assert.Equal(t, CategoryDefault, Classify(Normalize("नमस्ते"), "hi-IN"))
}

func TestResponseDeterministic(t *testing.T) {
	first, ok := Response("hi-IN", CategoryPests)
	require.True(t, ok)
	second, ok := Response("hi-IN", CategoryPests)
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "कीड़े")
}

func TestResponseUnknownLanguage(t *testing.T) {
	_, ok := Response("fr-FR", CategoryPests)
	assert.False(t, ok)
}

func TestDefaultResponseFallback(t *testing.T) {
	assert.Equal(t, "कोई विशिष्ट जानकारी नहीं मिली। कृपया फिर से प्रयास करें।", DefaultResponse("hi-IN"))
	assert.Equal(t, FallbackResponse, DefaultResponse("en-IN"))
}

func TestWeatherResponseInterpolation(t *testing.T) {
	text, ok := WeatherResponse("hi-IN", "clear sky", 300.15)
	require.True(t, ok)
	assert.Contains(t, text, "clear sky")
	assert.Contains(t, text, "26.99°C")
}

func TestFormatCelsius(t *testing.T) {
	assert.Equal(t, "26.99", FormatCelsius(300.15))
	assert.Equal(t, "0.00", FormatCelsius(273.15))
	assert.Equal(t, "-10.00", FormatCelsius(263.15))
	assert.Equal(t, "26.85", FormatCelsius(300.0))
}

func TestVoiceSupported(t *testing.T) {
	assert.True(t, VoiceSupported("hi-IN"))
	assert.True(t, VoiceSupported("kn-IN"))
	assert.True(t, VoiceSupported("ta-IN"))
	assert.False(t, VoiceSupported("fr-FR"))
	assert.False(t, VoiceSupported("en-IN"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "insect attack", Normalize("INSECT Attack"))
}
