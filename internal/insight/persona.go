package insight

// Persona is the single derived label classifying the participant's dominant
// working style.
type Persona struct {
	Label   string
	Meaning string
}

// rule is one classification predicate: every requirement group must have at
// least one member present in the top-category set (AND of ORs).
type rule struct {
	requires [][]string
	persona  Persona
}

// personaRules is evaluated top to bottom; the first matching rule wins, so a
// category combination satisfying two rules always resolves to the earlier
// one. Order is part of the product definition — do not re-sort.
var personaRules = []rule{
	{
		requires: [][]string{
			{"Strategic Tilt"},
			{"Automation View", "AI Application"},
		},
		persona: Persona{
			Label:   "AI Strategy Orchestrator",
			Meaning: "You combine direction-setting with practical AI application. You perform best when you own priorities and design repeatable AI-assisted workflows.",
		},
	},
	{
		requires: [][]string{
			{"Need for Structure", "Problem Solving"},
			{"Automation View", "AI Application"},
		},
		persona: Persona{
			Label:   "Execution Optimizer",
			Meaning: "You turn complexity into structured execution. You perform best when you standardize work, automate repeatables, and track measurable outcomes.",
		},
	},
	{
		requires: [][]string{
			{"Communication"},
			{"Comfort with Uncertainty", "Continuous Learning"},
		},
		persona: Persona{
			Label:   "Adaptive Communicator",
			Meaning: "You help teams move through ambiguity by making ideas clear and actionable. You perform best when you translate uncertainty into simple next steps.",
		},
	},
	{
		requires: [][]string{
			{"Continuous Learning"},
			{"Comfort with Uncertainty", "AI Application"},
		},
		persona: Persona{
			Label:   "Learning Accelerator",
			Meaning: "You learn fast and improve through iteration. You perform best when you run short experiments and turn lessons into reusable templates.",
		},
	},
}

// defaultPersona applies when no rule matches (including the empty set).
var defaultPersona = Persona{
	Label:   "Balanced Builder",
	Meaning: "You have a well-rounded profile. You perform best by doubling down on your strengths and raising your lowest area to remove execution friction.",
}

// ClassifyPersona evaluates the ordered rule list against the set of
// top-ranked category names and returns the first match, or the default.
func ClassifyPersona(topCategories []string) Persona {
	present := make(map[string]bool, len(topCategories))
	for _, c := range topCategories {
		present[c] = true
	}

	for _, r := range personaRules {
		if matches(r.requires, present) {
			return r.persona
		}
	}
	return defaultPersona
}

func matches(requires [][]string, present map[string]bool) bool {
	for _, group := range requires {
		ok := false
		for _, name := range group {
			if present[name] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
