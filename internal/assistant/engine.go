package assistant

import (
	"fmt"
	"strings"
)

// Request is one chat turn: the user's message plus the caller's cart.
type Request struct {
	Message string     `json:"message"`
	Cart    []CartLine `json:"cart"`
}

// Reply is the composed text together with the intent that produced it.
type Reply struct {
	Text   string `json:"reply"`
	Intent Intent `json:"intent"`
}

type Option func(*Engine)

func WithCatalog(c *Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

func WithPhrases(p Phrases) Option {
	return func(e *Engine) { e.phrases = p.clone() }
}

// WithRandom replaces the random source; nil keeps the default.
func WithRandom(r Random) Option {
	return func(e *Engine) {
		if r != nil {
			e.rnd = r
		}
	}
}

// WithWordBoundaries makes keywords match whole words only.
func WithWordBoundaries() Option {
	return func(e *Engine) { e.classifier = NewClassifier(true) }
}

// Engine answers shopping questions from a static catalog. It holds no
// per-call state and is safe for concurrent use when its Random is.
type Engine struct {
	catalog    *Catalog
	phrases    Phrases
	rnd        Random
	classifier *Classifier
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		catalog:    DefaultCatalog(),
		phrases:    DefaultPhrases(),
		rnd:        globalRandom{},
		classifier: NewClassifier(false),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = MustCatalog(nil)
	}
	return e
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

func (e *Engine) Classify(message string) Intent {
	return e.classifier.Classify(message)
}

// Reply returns the composed answer text for req.
func (e *Engine) Reply(req Request) string {
	return e.Respond(req).Text
}

// Respond classifies the message and composes a reply. It never returns an
// empty Text.
func (e *Engine) Respond(req Request) Reply {
	intent := e.classifier.Classify(req.Message)
	cart := req.Cart

	var text string
	switch intent {
	case IntentTracking:
		text = pick(e.rnd, trackingReplies)
	case IntentReturns:
		text = pick(e.rnd, returnReplies)
	case IntentShipping:
		text = pick(e.rnd, shippingReplies)
	case IntentPayment:
		text = pick(e.rnd, paymentReplies)
	case IntentCart:
		text = e.decorate(SummarizeCart(cart), cart)
	case IntentRobot:
		text = e.listReply(robotReplies, e.catalog.ByCategory(CategoryRobotics), "robotics", cart)
	case IntentConsole:
		it, ok := e.catalog.Find(inCategory(CategoryConsole))
		text = e.decorate(fill(pick(e.rnd, consoleReplies), slots{
			"pick":  labelOr(it, ok, parenLabel, "Next-Gen Console"),
			"price": priceOr(it, ok, "€499"),
		}), cart)
	case IntentDrone:
		it, ok := e.catalog.Find(nameContains("drone"))
		text = e.pickReply(droneReplies, labelOr(it, ok, atLabel, "Pro drone kit"), cart)
	case IntentTablet:
		it, ok := e.catalog.Find(inCategory(CategoryTablet))
		if !ok {
			it, ok = e.catalog.Find(nameContains("tablet"))
		}
		text = e.pickReply(tabletReplies, labelOr(it, ok, parenLabel, `a 12.9" pro tablet`), cart)
	case IntentCamera:
		it, ok := e.catalog.Find(nameContains("camera"))
		text = e.pickReply(cameraReplies, labelOr(it, ok, parenLabel, "DSLR kit with lenses"), cart)
	case IntentChair:
		it, ok := e.catalog.Find(inCategory(CategoryChair))
		text = e.pickReply(chairReplies, labelOr(it, ok, atLabel, "ergonomic chair with lumbar support"), cart)
	case IntentStorage:
		it, ok := e.catalog.Find(func(it Item) bool {
			return it.Category == CategoryStorage || nameContains("ssd")(it)
		})
		text = e.pickReply(storageReplies, labelOr(it, ok, parenLabel, "portable SSD 1TB around €159"), cart)
	case IntentDock:
		it, ok := e.catalog.Find(func(it Item) bool {
			return it.Category == CategoryAccessory && nameContains("dock")(it)
		})
		text = e.pickReply(dockReplies, labelOr(it, ok, parenLabel, "USB-C dock"), cart)
	case IntentLaptop:
		text = e.listReply(laptopReplies, e.catalog.ByCategory(CategoryLaptop), "laptop", cart)
	case IntentMonitor:
		text = e.listReply(monitorReplies, e.catalog.ByCategory(CategoryMonitor), "monitor", cart)
	case IntentBundle:
		text = e.bundleReply(cart)
	case IntentBudget:
		text = e.budgetReply(req.Message, cart)
	case IntentRecommend:
		picks := e.catalog.Sample(e.rnd, 3)
		if len(picks) == 0 {
			text = e.decorate(pick(e.rnd, fallbackReplies), cart)
			break
		}
		text = e.decorate(fill(pick(e.rnd, recommendReplies), slots{"items": formatList(picks)}), cart)
	case IntentDeals:
		text = e.decorate(pick(e.rnd, dealReplies), cart)
	case IntentAudio:
		text = e.decorate(pick(e.rnd, audioReplies), cart)
	case IntentVR:
		text = e.decorate(pick(e.rnd, vrReplies), cart)
	default:
		text = e.decorate(pick(e.rnd, fallbackReplies), cart)
	}

	if strings.TrimSpace(text) == "" {
		text = fallbackReplies[0]
	}
	return Reply{Text: text, Intent: intent}
}

func (e *Engine) listReply(bank []string, items []Item, what string, cart []CartLine) string {
	if len(items) == 0 {
		return e.decorate(fmt.Sprintf("I have no %s picks in my list right now. Share your budget and I’ll suggest alternatives.", what), cart)
	}
	return e.decorate(fill(pick(e.rnd, bank), slots{"items": formatList(items)}), cart)
}

func (e *Engine) pickReply(bank []string, label string, cart []CartLine) string {
	return e.decorate(fill(pick(e.rnd, bank), slots{"pick": label}), cart)
}

func (e *Engine) bundleReply(cart []CartLine) string {
	var bundle []Item
	var total float64
	for _, it := range e.catalog.items {
		for _, name := range bundleNames {
			if it.Name == name {
				bundle = append(bundle, it)
				total += it.Price
				break
			}
		}
	}
	if len(bundle) == 0 {
		return e.decorate(pick(e.rnd, fallbackReplies), cart)
	}
	return e.decorate(fill(pick(e.rnd, bundleReplies), slots{
		"items": formatList(bundle),
		"total": FormatEuro(total),
	}), cart)
}

func (e *Engine) budgetReply(message string, cart []CartLine) string {
	budget, _ := ExtractBudget(message)
	label := FormatEuro(float64(budget))

	fits := e.catalog.WithinBudget(float64(budget))
	if len(fits) == 0 {
		return fill(noBudgetMatches, slots{"budget": label})
	}
	best := fits[max(len(fits)-3, 0):]
	return e.decorate(fill(pick(e.rnd, budgetReplies), slots{
		"budget": label,
		"items":  formatList(best),
	}), cart)
}

// decorate wraps core with an opener and, by coin flip, a closer, a call to
// action, or a cart summary.
func (e *Engine) decorate(core string, cart []CartLine) string {
	lead := pick(e.rnd, e.phrases.Openers)
	tail := pick(e.rnd, e.phrases.Closers)
	ask := pick(e.rnd, e.phrases.CTAs)

	if len(cart) > 0 && e.rnd.Float64() > 0.6 {
		return joinWords(lead, core, tail, SummarizeCart(cart))
	}
	if e.rnd.Float64() > 0.5 {
		return joinWords(lead, core, tail)
	}
	if e.rnd.Float64() > 0.5 {
		return joinWords(lead, core, ask)
	}
	return joinWords(lead, core)
}

func joinWords(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func inCategory(c Category) func(Item) bool {
	return func(it Item) bool { return it.Category == c }
}

func nameContains(sub string) func(Item) bool {
	return func(it Item) bool { return strings.Contains(strings.ToLower(it.Name), sub) }
}

func parenLabel(it Item) string {
	return fmt.Sprintf("%s (%s)", it.Name, FormatEuro(it.Price))
}

func atLabel(it Item) string {
	return fmt.Sprintf("%s at %s", it.Name, FormatEuro(it.Price))
}

func labelOr(it Item, ok bool, format func(Item) string, fallback string) string {
	if !ok {
		return fallback
	}
	return format(it)
}

func priceOr(it Item, ok bool, fallback string) string {
	if !ok {
		return fallback
	}
	return FormatEuro(it.Price)
}
