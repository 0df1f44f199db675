package locale

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category is the fixed advice topic selected by keyword classification.
type Category string

const (
	CategoryPests       Category = "pests"
	CategoryWeather     Category = "weather"
	CategorySoil        Category = "soil"
	CategoryFertilizers Category = "fertilizers"
	CategoryDiseases    Category = "diseases"
	CategoryIrrigation  Category = "irrigation"
	CategoryDefault     Category = "default"
)

// FallbackResponse is returned when a language has no response table at all.
const FallbackResponse = "No specific information found. Please try again."

// voiceLanguages are the languages the speech providers accept.
var voiceLanguages = map[string]bool{
	"hi-IN": true,
	"kn-IN": true,
	"ta-IN": true,
}

// VoiceSupported reports whether audio queries are accepted for the language.
func VoiceSupported(lang string) bool {
	return voiceLanguages[lang]
}

type responseSet struct {
	Default         string
	Pests           string
	WeatherTemplate string // two %s slots: description, temperature in °C
	Soil            string
	Fertilizers     string
	Diseases        string
	Irrigation      string
}

var responses = map[string]responseSet{
	"hi-IN": {
		Default:         "कोई विशिष्ट जानकारी नहीं मिली। कृपया फिर से प्रयास करें।",
		Pests:           "आपकी फसल में कीड़े हैं। सुझाव: जैविक कीटनाशक का उपयोग करें, जैसे नीम का तेल।",
		WeatherTemplate: "मौसम पूर्वानुमान: %s, तापमान: %s°C",
		Soil:            "मिट्टी की उर्वरता बढ़ाने के लिए जैविक खाद, जैसे गोबर की खाद, का उपयोग करें।",
		Fertilizers:     "नाइट्रोजन, फास्फोरस, और पोटाश युक्त उर्वरकों का संतुलित उपयोग करें।",
		Diseases:        "फसल रोगों के लिए, प्रभावित पौधों को हटाएं और फफूंदनाशक का उपयोग करें। रोग की पहचान के लिए स्थानीय कृषि विशेषज्ञ से संपर्क करें।",
		Irrigation:      "सिंचाई के लिए ड्रिप इरिगेशन सिस्टम का उपयोग करें ताकि पानी की बचत हो और फसल को सही मात्रा में पानी मिले।",
	},
	"kn-IN": {
		Default:         "ಯಾವುದೇ ನಿರ್ದಿಷ್ಟ ಮಾಹಿತಿ ಸಿಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
		Pests:           "ನಿಮ್ಮ ಬೆಳೆಯಲ್ಲಿ ಕೀಟಗಳಿವೆ. ಸಲಹೆ: ಸಾವಯವ ಕೀಟನಾಶಕವನ್ನು ಬಳಸಿ, ಉದಾಹರಣೆಗೆ ಕೀಟಾಮೃತ.",
		WeatherTemplate: "ಹವಾಮಾನ ಮುನ್ಸೂಚನೆ: %s, ತಾಪಮಾನ: %s°C",
		Soil:            "ಫಲವತ್ತತೆಯನ್ನು ಹೆಚ್ಚಿಸಲು ಸಾವಯವ ಗೊಬ್ಬರವನ್ನು ಬಳಸಿ, ಉದಾಹರಣೆಗೆ ಗೋಮಯ.",
		Fertilizers:     "ನೈಟ್ರೋಜನ್, ಫಾಸ್ಫರಸ್ ಮತ್ತು ಪೊಟ್ಯಾಸಿಯಮ್ ಒಳಗೊಂಡ ರಸಗೊಬ್ಬರವನ್ನು ಸಮತೋಲನದಲ್ಲಿ ಬಳಸಿ.",
		Diseases:        "ಬೆಳೆ ರೋಗಗಳಿಗೆ, ರೋಗಗ್ರಸ್ತ ಸಸ್ಯಗಳನ್ನು ತೆಗೆದುಹಾಕಿ ಮತ್ತು ಶಿಲೀಂಧ್ರನಾಶಕವನ್ನು ಬಳಸಿ. ರೋಗದ ಗುರುತಿಸುವಿಕೆಗೆ ಸ್ಥಳೀಯ ಕೃಷಿ ತಜ್ಞರನ್ನು ಸಂಪರ್ಕಿಸಿ.",
		Irrigation:      "ನೀರಾವರಿಗಾಗಿ ತೊಟ್ಟಿಕ್ಕುವ ನೀರಾವರಿ ವ್ಯವಸ್ಥೆಯನ್ನು ಬಳಸಿ, ಇದರಿಂದ ನೀರು ಉಳಿತಾಯವಾಗುತ್ತದೆ ಮತ್ತು ಬೆಳೆಗೆ ಸರಿಯಾದ ಪ್ರಮಾಣದ ನೀರು ಸಿಗುತ್ತದೆ。",
	},
	"ta-IN": {
		Default:         "குறிப்பிட்ட தகவல் எதுவும் கிடைக்கவில்லை. மீண்டும் முயற்சிக்கவும்.",
		Pests:           "உங்கள் பயிரில் பூச்சிகள் உள்ளன. பரிந்துரை: இயற்கை பூச்சிக்கொல்லியைப் பயன்படுத்தவும், எடுத்துக்காட்டாக, வேப்ப எண்ணெய்.",
		WeatherTemplate: "வானிலை முன்னறிவிப்பு: %s, வெப்பநிலை: %s°C",
		Soil:            "மண்ணின் வளத்தை அதிகரிக்க இயற்கை உரங்களைப் பயன்படுத்தவும், எடுத்துக்காட்டாக, மாட்டு எரு.",
		Fertilizers:     "நைட்ரஜன், பாஸ்பரஸ் மற்றும் பொட்டாசியம் கொண்ட உரங்களை சமநிலையில் பயன்படுத்தவும்.",
		Diseases:        "பயிர் நோய்களுக்கு, பாதிக்கப்பட்ட தாவரங்களை அகற்றி, பூஞ்சாண நாசினியைப் பயன்படுத்தவும். நோயைக் கண்டறிய உள்ளூர் வேளாண் நிபுணரைத் தொடர்பு கொள்ளவும்。",
		Irrigation:      "நீர்ப்பாசனத்திற்கு ட்ரிப் நீர்ப்பாசன முறையைப் பயன்படுத்தவும், இதனால் தண்ணீர் மிச்சமாகும் மற்றும் பயிருக்கு சரியான அளவு தண்ணீர் கிடைக்கும்。",
	},
}

// priority is the classification order. First match wins: a query containing
// both a pest and a water keyword always classifies as pests. The order is a
// contract, not an implementation detail.
var priority = []Category{
	CategoryPests,
	CategoryWeather,
	CategorySoil,
	CategoryFertilizers,
	CategoryDiseases,
	CategoryIrrigation,
}

var keywords = map[string]map[Category][]*regexp.Regexp{
	"hi-IN": {
		CategoryPests:       compile(`कीट`, `पेस्ट`, `कीड़े`, `कीड़ा`, `insect`),
		CategoryWeather:     compile(`मौसम`, `weather`, `तापमान`, `temperature`),
		CategorySoil:        compile(`मिट्टी`, `soil`, `उर्वरता`, `fertility`),
		CategoryFertilizers: compile(`उर्वरक`, `fertilizer`, `खाद`),
		CategoryDiseases:    compile(`रोग`, `disease`, `बीमारी`),
		CategoryIrrigation:  compile(`सिंचाई`, `irrigation`, `पानी`),
	},
	"kn-IN": {
		CategoryPests:       compile(`ಕೀಟ`, `pest`, `ಕೀಡ`, `insect`),
		CategoryWeather:     compile(`ಹವಾಮಾನ`, `weather`, `ತಾಪಮಾನ`, `temperature`),
		CategorySoil:        compile(`ಮಣ್ಣು`, `soil`, `ಫಲವತ್ತತೆ`, `fertility`),
		CategoryFertilizers: compile(`ರಸಗೊಬ್ಬರ`, `fertilizer`, `ಗೊಬ್ಬರ`),
		CategoryDiseases:    compile(`ರೋಗ`, `disease`, `ಬೇನೆ`),
		CategoryIrrigation:  compile(`ನೀರಾವರಿ`, `irrigation`, `ನೀರು`),
	},
	"ta-IN": {
		CategoryPests:       compile(`பூச்சி`, `pest`, `insect`),
		CategoryWeather:     compile(`வானிலை`, `weather`, `வெப்பநிலை`, `temperature`),
		CategorySoil:        compile(`மண்`, `soil`, `வளம்`, `fertility`),
		CategoryFertilizers: compile(`உரம்`, `fertilizer`),
		CategoryDiseases:    compile(`நோய்`, `disease`),
		CategoryIrrigation:  compile(`நீர்ப்பாசனம்`, `irrigation`, `தண்ணீர்`),
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// Normalize lowercases and NFC-canonicalizes a transcript for classification.
func Normalize(transcript string) string {
	return norm.NFC.String(strings.ToLower(transcript))
}

// Classify selects the advice category for a normalized transcript. It is a
// pure function of (language, transcript): languages without a keyword table
// yield CategoryDefault with no pattern evaluation.
func Classify(transcript, lang string) Category {
	table, ok := keywords[lang]
	if !ok || transcript == "" {
		return CategoryDefault
	}

	for _, category := range priority {
		for _, pattern := range table[category] {
			if pattern.MatchString(transcript) {
				return category
			}
		}
	}
	return CategoryDefault
}

// Response looks up the canned advice text for a non-weather category. The
// boolean is false when the language has no response table.
func Response(lang string, category Category) (string, bool) {
	set, ok := responses[lang]
	if !ok {
		return "", false
	}

	switch category {
	case CategoryPests:
		return set.Pests, true
	case CategorySoil:
		return set.Soil, true
	case CategoryFertilizers:
		return set.Fertilizers, true
	case CategoryDiseases:
		return set.Diseases, true
	case CategoryIrrigation:
		return set.Irrigation, true
	default:
		return set.Default, true
	}
}

// WeatherResponse interpolates live weather data into the language's template.
func WeatherResponse(lang, description string, kelvin float64) (string, bool) {
	set, ok := responses[lang]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(set.WeatherTemplate, description, FormatCelsius(kelvin)), true
}

// DefaultResponse returns the language's default advice text, or the hardcoded
// fallback when the language is unknown.
func DefaultResponse(lang string) string {
	if set, ok := responses[lang]; ok {
		return set.Default
	}
	return FallbackResponse
}

// FormatCelsius converts Kelvin to Celsius with two decimal places. The
// difference is computed in hundredths and truncated, never rounded up.
func FormatCelsius(kelvin float64) string {
	hundredths := math.Trunc(kelvin*100 - 27315)
	if hundredths == 0 {
		hundredths = 0 // drop the sign of negative zero
	}
	return fmt.Sprintf("%.2f", hundredths/100)
}
