// Package insight holds the static per-category narrative library and the
// persona classification rules. Both are fixed data evaluated by pure
// functions — no dynamic lookup, no reflection.
package insight

// Entry is the narrative material for one category: a strength statement, a
// risk statement, and up to three recommended actions for the 30-day plan.
type Entry struct {
	Strength string
	Risk     string
	Actions  []string
}

// fallback is substituted for any category missing from the library, so
// report assembly is total over arbitrary category names.
var fallback = Entry{
	Strength: "You show strength in this area and can use it as leverage to improve other capabilities.",
	Risk:     "This area may limit your effectiveness if left unattended.",
	Actions: []string{
		"Pick one concrete behavior to improve in this area and practice it twice a week.",
		"Create a simple checklist to make progress measurable.",
		"Review results weekly and adjust your approach.",
	},
}

// Lookup returns the library entry for category, or the generic fallback when
// the category has no dedicated entry.
func Lookup(category string) Entry {
	if e, ok := library[category]; ok {
		return e
	}
	return fallback
}

var library = map[string]Entry{
	"Strategic Tilt": {
		Strength: "You naturally translate ambiguity into priorities and make trade-offs rather than collecting information endlessly.",
		Risk:     "Strategy may stay conceptual unless you convert it into concrete decisions, owners, and timelines.",
		Actions: []string{
			"Pick one strategic objective and define 3 measurable outcomes for the next 30 days.",
			"Write a one-page decision log: what you will do, what you will not do, and why.",
			"Convert outcomes into a weekly rhythm: review, commit, and adjust every 7 days.",
		},
	},
	"Automation View": {
		Strength: "You spot repeatable work and quickly identify where automation or AI can remove friction.",
		Risk:     "You may automate before standards are defined, which can scale inconsistency.",
		Actions: []string{
			"Choose one repetitive activity and document the steps and quality criteria before automating.",
			"Create a simple prompt or template and run 5 iterations to stabilize output quality.",
			"Add a human check: accuracy, context fit, and risk scan before reuse.",
		},
	},
	"AI Application": {
		Strength: "You are comfortable applying AI as a practical work partner rather than treating it as a novelty.",
		Risk:     "Without guardrails, outputs can look polished but still be wrong or misaligned to context.",
		Actions: []string{
			"Select one daily deliverable and redesign it with an AI-assisted workflow (draft, critique, finalize).",
			"Build a verification checklist you must follow before using AI outputs in decisions.",
			"Save your best prompts as reusable patterns (inputs, constraints, tone, acceptance criteria).",
		},
	},
	"Continuous Learning": {
		Strength: "You adapt quickly by learning through iteration and building skill over time.",
		Risk:     "Learning can become scattered unless you focus on one capability that compounds.",
		Actions: []string{
			"Pick one capability to build (prompting, analysis, automation, storytelling) and commit 20 minutes daily.",
			"Create a small portfolio: 3 improved outputs per week you can show and reuse.",
			"Do a weekly retro: what improved, what broke, what you will change next week.",
		},
	},
	"Communication": {
		Strength: "You can explain ideas clearly and help others align around what matters.",
		Risk:     "Communication can become high-effort if you are compensating for unclear ownership or decisions.",
		Actions: []string{
			"For your next major message, write: purpose, decision needed, and next step in one paragraph.",
			"Standardize meeting outputs: decision, owner, date, and risks.",
			"Create one reusable update template (status, blockers, asks) and use it weekly.",
		},
	},
	"Problem Solving": {
		Strength: "You break problems into tractable pieces and move from analysis to action.",
		Risk:     "You may solve locally without influencing the system-level root cause.",
		Actions: []string{
			"Pick one recurring issue and run a root-cause review with evidence, not opinions.",
			"Define one systemic fix and one quick win you can implement this week.",
			"Track the issue weekly to prove the fix reduced frequency or impact.",
		},
	},
	"Comfort with Uncertainty": {
		Strength: "You stay effective when outcomes are unclear and can move forward with incomplete information.",
		Risk:     "You may under-communicate risks or assumptions, causing surprises later.",
		Actions: []string{
			"Write your top 3 assumptions for the next initiative and how you will validate them.",
			"Use a risk register: risk, trigger, mitigation, owner, review date.",
			"Build a weekly checkpoint to surface uncertainty early rather than late.",
		},
	},
	"Pressure Handling": {
		Strength: "You keep momentum under pressure and maintain delivery focus.",
		Risk:     "Sustained pressure can lead to burnout unless you design sustainable routines.",
		Actions: []string{
			"Define a personal operating rhythm: deep work blocks, communication windows, recovery time.",
			"Set one boundary: limit meeting load or create no-meeting blocks twice a week.",
			"Use a weekly energy audit: what drained you, what fueled you, and what you will change.",
		},
	},
	"Need for Structure": {
		Strength: "You create clarity through routines, templates, and predictable execution.",
		Risk:     "Too much structure can slow adaptation in fast-changing work.",
		Actions: []string{
			"Create a light-weight workflow: 3 steps max for a high-frequency activity.",
			"Define what can change without approval and what needs review.",
			"Run a weekly simplification pass: delete one step, automate one step, standardize one output.",
		},
	},
	"Ownership Desire": {
		Strength: "You take responsibility and push work forward without waiting for perfect conditions.",
		Risk:     "You may absorb too much responsibility and become a bottleneck.",
		Actions: []string{
			"List what you own versus what you influence, then delegate one item this week.",
			"Define clear handoffs: who needs what, by when, in what format.",
			"Create a small operating cadence with stakeholders to reduce ad hoc escalation.",
		},
	},
	"Impact Drive": {
		Strength: "You are motivated by meaningful outcomes and can sustain effort when value is clear.",
		Risk:     "You may reject necessary low-glamour work even when it is required for scale.",
		Actions: []string{
			"Define one impact metric you will move in 30 days and track it weekly.",
			"Identify one foundational task that enables scale and schedule it early.",
			"Share a short impact update to build alignment and momentum.",
		},
	},
}
