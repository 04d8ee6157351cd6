package assistant

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Intent is the reply branch a message resolves to.
type Intent string

const (
	IntentTracking  Intent = "tracking"
	IntentReturns   Intent = "returns"
	IntentShipping  Intent = "shipping"
	IntentPayment   Intent = "payment"
	IntentCart      Intent = "cart"
	IntentRobot     Intent = "robot"
	IntentConsole   Intent = "console"
	IntentDrone     Intent = "drone"
	IntentTablet    Intent = "tablet"
	IntentCamera    Intent = "camera"
	IntentChair     Intent = "chair"
	IntentStorage   Intent = "storage"
	IntentDock      Intent = "dock"
	IntentLaptop    Intent = "laptop"
	IntentMonitor   Intent = "monitor"
	IntentBundle    Intent = "bundle"
	IntentBudget    Intent = "budget"
	IntentRecommend Intent = "recommend"
	IntentDeals     Intent = "deals"
	IntentAudio     Intent = "audio"
	IntentVR        Intent = "vr"
	IntentFallback  Intent = "fallback"
)

type rule struct {
	intent   Intent
	keywords []string
}

// Order matters: the first rule with a matching keyword wins.
var leadingRules = []rule{
	{IntentTracking, []string{"track", "tracking", "order status", "ord"}},
	{IntentReturns, []string{"return", "refund", "exchange"}},
	{IntentShipping, []string{"shipping", "delivery"}},
	{IntentPayment, []string{"payment", "pay", "card"}},
	{IntentCart, []string{"cart", "basket"}},
	{IntentRobot, []string{"robot"}},
	{IntentConsole, []string{"console", "ps5", "xbox", "switch"}},
	{IntentDrone, []string{"drone"}},
	{IntentTablet, []string{"tablet", "ipad", "tab"}},
	{IntentCamera, []string{"camera", "dslr"}},
	{IntentChair, []string{"chair", "ergonomic", "seat"}},
	{IntentStorage, []string{"storage", "ssd", "drive"}},
	{IntentDock, []string{"dock", "docking", "usb-c"}},
	{IntentLaptop, []string{"laptop", "notebook"}},
	{IntentMonitor, []string{"monitor", "display", "screen"}},
	{IntentBundle, []string{"bundle", "build", "setup"}},
}

// Checked only after the budget extractor came up empty.
var trailingRules = []rule{
	{IntentRecommend, []string{"recommend", "suggest", "idea", "option"}},
	{IntentDeals, []string{"deal", "discount", "offer"}},
	{IntentAudio, []string{"headphone", "audio"}},
	{IntentVR, []string{"vr"}},
}

// Classifier maps a message to exactly one Intent. It never consults the
// random source, so the same message always yields the same Intent.
type Classifier struct {
	wordBoundaries bool
}

func NewClassifier(wordBoundaries bool) *Classifier {
	return &Classifier{wordBoundaries: wordBoundaries}
}

func (c *Classifier) Classify(message string) Intent {
	lower := strings.ToLower(message)

	if in, ok := c.firstMatch(lower, leadingRules); ok {
		return in
	}
	if _, ok := ExtractBudget(message); ok {
		return IntentBudget
	}
	if in, ok := c.firstMatch(lower, trailingRules); ok {
		return in
	}
	return IntentFallback
}

func (c *Classifier) firstMatch(lower string, rules []rule) (Intent, bool) {
	for _, r := range rules {
		if c.has(lower, r.keywords) {
			return r.intent, true
		}
	}
	return "", false
}

func (c *Classifier) has(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if c.wordBoundaries {
			if containsWord(lower, kw) {
				return true
			}
			continue
		}
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// containsWord reports whether kw occurs in s with no letter or digit
// directly on either side.
func containsWord(s, kw string) bool {
	if kw == "" {
		return false
	}
	for from := 0; from <= len(s)-len(kw); {
		idx := strings.Index(s[from:], kw)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(kw)

		before, _ := utf8.DecodeLastRuneInString(s[:start])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if (start == 0 || !isWordRune(before)) && (end == len(s) || !isWordRune(after)) {
			return true
		}
		from = start + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
