package assistant

import (
	"slices"
	"strings"
)

// Phrases holds the decoration banks wrapped around a core reply.
type Phrases struct {
	Openers []string
	Closers []string
	CTAs    []string
}

func DefaultPhrases() Phrases {
	return Phrases{
		Openers: []string{
			"Got it.",
			"On it.",
			"Sure thing.",
			"Absolutely.",
			"Happy to help.",
			"Let’s do it.",
		},
		Closers: []string{
			"Want me to tailor further?",
			"Need it faster or cheaper?",
			"Say the word if you want alternatives.",
			"I can refine by budget or brand.",
			"Tell me your priority and I’ll tighten it.",
		},
		CTAs: []string{
			"Share budget + use-case.",
			"Tell me if it’s for work, gaming, or school.",
			"Let me know your top priority: GPU, battery, or portability.",
			"Need accessories bundled in?",
		},
	}
}

func (p Phrases) clone() Phrases {
	return Phrases{
		Openers: slices.Clone(p.Openers),
		Closers: slices.Clone(p.Closers),
		CTAs:    slices.Clone(p.CTAs),
	}
}

// Core reply banks. Placeholders are filled by fill: {items}, {pick},
// {price}, {budget}, {total}.
var (
	trackingReplies = []string{
		"Open Dashboard → Orders for live status. Drop an order ID and I will map you to support if needed.",
		"Tracking is in Dashboard → Orders. Paste your order ID if you want me to outline next steps.",
		"Dashboard → Orders shows real-time status. Share the order ID and I can draft escalation steps.",
	}
	returnReplies = []string{
		"Returns accepted within 30 days if unopened. Share order ID + item and I will outline the label steps.",
		"I can guide a return: need order ID and item name. Window is 30 days, unopened preferred.",
		"Refunds/returns: 30-day window. Send the order ID and item; I will draft the steps for you.",
	}
	shippingReplies = []string{
		"We ship EU/US with tracking: ~3-5 business days EU, 5-8 US. Express available at checkout.",
		"Tracked delivery across EU/US. Typical timing 3-5 days EU; 5-8 US. Express is an option.",
		"Shipping is tracked. EU ~3-5 days, US ~5-8. You can choose express during checkout.",
	}
	paymentReplies = []string{
		"Cards and PayPal are supported. If a payment hiccups, retry; test payments are set to succeed.",
		"We accept cards + PayPal. In test mode payments are forced to succeed, so you can proceed.",
		"Payments: card or PayPal. If something fails, re-open checkout—test mode approvals are enabled.",
	}
	robotReplies = []string{
		"Robotics picks: {items}. Educational Robot Kit suits kids; Pro Robotics Arm Kit is for builders.",
		"For robots, try: {items}. Want kid-friendly (Educational) or advanced (Pro Arm)?",
		"I can suggest robots: {items}. Tell me if it’s for learning or prototyping.",
	}
	consoleReplies = []string{
		"Console pick: {pick} with VR-ready support. Want a headset too?",
		"Need a console? The Next-Gen Console is available ({price}). Want extra controllers or a VR headset?",
		"For consoles, go Next-Gen Console ({price}). I can bundle it with a VR Headset if you like.",
	}
	droneReplies = []string{
		"Drone suggestion: {pick}. Need 4K video or just aerial photos?",
		"For drones, I suggest a 4K camera model. Budget? I can adjust accessories like extra batteries.",
		"Looking at drones? Tell me if you need long flight time or 4K capture; I’ll pick a kit and spare battery.",
	}
	tabletReplies = []string{
		"Tablet pick: {pick}. Need pencil/keyboard?",
		"For tablets, go big screen if you sketch, smaller if you read. Want me to add a keyboard case?",
		"I can size a tablet for you—tell me if it’s for media, drawing, or note-taking and your budget.",
	}
	cameraReplies = []string{
		"Camera pick: {pick}. Need 4K video or low-light priority?",
		"For cameras, choose sensor + lens. Share budget and whether you need 4K/slow-mo; I’ll shortlist a kit.",
		"I can spec a camera kit—tell me if it’s travel, studio, or vlogging and your price ceiling.",
	}
	chairReplies = []string{
		"Comfort pick: {pick}. Want headrest or mesh?",
		"For chairs, decide on mesh vs cushioned and headrest. I can point you to a lumbar-friendly option.",
		"Looking for a chair? I’ll choose lumbar + height adjustable. Any preference for headrest or arm style?",
	}
	storageReplies = []string{
		"Storage pick: {pick}. Need rugged or slim?",
		"For SSDs, choose capacity + speed. Want a 1TB portable or a dock-friendly NVMe enclosure?",
		"I can size storage: tell me capacity (512GB/1TB/2TB) and whether you need rugged or ultra-slim.",
	}
	dockReplies = []string{
		"Dock pick: {pick} for single-cable desk. Need dual 4K?",
		"USB-C dock suggestion: dual display + power passthrough. Do you need Ethernet and SD reader?",
		"For docking, I’ll pick one with PD + HDMI. How many monitors and what laptop are you on?",
	}
	laptopReplies = []string{
		"Top laptops: {items}. Ultrabook for work/travel; Gaming Laptop RTX for high-FPS + AI workloads.",
		"Two good options: {items}. Need portability (Ultrabook) or GPU power (Gaming RTX)?",
		"Laptop shortlist: {items}. Share use-case (coding, gaming, creator) and budget for a tighter pick.",
	}
	monitorReplies = []string{
		`Monitor rec: {items}. 27" 4K pairs well with MacBook; add Docking Station for single-cable setup.`,
		`Displays: {items}. 27" 4K is color-accurate; want gaming (high refresh) or creator (4K)?`,
		"Monitors I like: {items}. For MacBooks, go 4K + USB-C dock for one-cable desks.",
	}
	bundleReplies = []string{
		"Starter workspace bundle: {items}. About {total}. For gaming, swap Ultrabook → Gaming Laptop RTX.",
		"Desk build: {items} ≈ {total}. Prefer minimal? Drop the RGB keyboard and keep the dock + 4K display.",
		"Balanced setup: {items} (~{total}). Tell me if you need it tuned for gaming or video editing.",
	}
	budgetReplies = []string{
		"Within {budget} you can grab: {items}. Need this for gaming, coding, or creators?",
		"Budget {budget}: consider {items}. Share the main use and I’ll refine it.",
		"I can fit {items} under {budget}. Want me to bias for battery life or GPU?",
	}
	recommendReplies = []string{
		"Here are three ideas: {items}. Want me to tailor by use-case?",
		"Try these: {items}. Share your priority (GPU, battery, portability) to tighten the list.",
		"{items} could fit. Tell me your budget and whether you need them for work, gaming, or school.",
	}
	dealReplies = []string{
		"Current focus: curated picks. I can still optimize price—share budget and I’ll keep it lean.",
		"No live promos in this mock mode, but I can pick the best price/performance items for your budget.",
		"Deals are simulated here; tell me budget and I’ll recommend highest value items instead.",
	}
	audioReplies = []string{
		"Studio Headphones (€349) are flat/neutral for editing; add Smart Speaker Home (€129) for room audio.",
		"For audio: Studio Headphones (€349) for neutral monitoring; Smart Speaker Home (€129) for casual listening.",
		"Need audio? Studio Headphones are neutral for editing. If you want room sound, pair with Smart Speaker Home.",
	}
	vrReplies = []string{
		"VR Headset System (€399) is in stock. Pair with Next-Gen Console (€499) or a gaming PC for best tracking.",
		"VR pick: Headset System (€399). For best tracking, hook to a gaming PC or the latest console.",
		"Grab the VR Headset (€399). Want a PC build or console pairing to go with it?",
	}
	fallbackReplies = []string{
		"Tell me your goal (gaming, work, creator) and budget. I will list 2-3 specific items with prices.",
		"What are you optimizing for—battery, GPU, or portability—and what’s the budget? I’ll shortlist 2-3 items.",
		"Share your budget and main use-case. I’ll craft a small set of options with prices in euros.",
	}
)

const noBudgetMatches = "No matches under {budget} in my sample list, but I can still suggest refurbished or accessory bundles."

// Item names that make up the workspace bundle.
var bundleNames = []string{"Premium Ultrabook", `4K Monitor 27"`, "USB-C Docking Station", "Mechanical RGB Keyboard"}

type slots map[string]string

func fill(tpl string, s slots) string {
	if len(s) == 0 {
		return tpl
	}
	pairs := make([]string, 0, len(s)*2)
	for k, v := range s {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
