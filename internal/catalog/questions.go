package catalog

// choice builds the ordered A–F option set for an 18-question block that all
// share the same six letters.
func choice(labels ...string) []Option {
	keys := []string{"A", "B", "C", "D", "E", "F"}
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Key: keys[i], Label: l}
	}
	return opts
}

// questions is the full battery: 18 choice questions followed by 5 scale
// questions. Text and ordering are fixed — IDs double as display order.
var questions = []Question{
	{
		ID:       1,
		Category: "Work Satisfaction",
		Text:     "When you finish a task, what makes you feel like you truly succeeded?",
		Kind:     KindChoice,
		Options: choice(
			"Finding a key insight or a logical solution to a complex problem.",
			"Seeing someone else succeed or grow because of my support.",
			"Creating something original, like a new design or a unique story.",
			"Improving a process so that everything runs more efficiently.",
			"Successfully influencing a decision or winning a new opportunity.",
			"Launching a new product or delivering measurable results quickly.",
		),
	},
	{
		ID:       2,
		Category: "Natural Focus",
		Text:     "If you had a free day to work on anything, what would you naturally choose?",
		Kind:     KindChoice,
		Options: choice(
			"Researching deep topics and analyzing trends.",
			"Mentoring others or building a community.",
			"Designing new concepts or creative projects.",
			"Organizing systems and optimizing workflows.",
			"Networking and persuading others to join a vision.",
			"Building a business or starting a new project.",
		),
	},
	{
		ID:       3,
		Category: "Core Frustrations",
		Text:     "What is most likely to drain your energy at work?",
		Kind:     KindChoice,
		Options: choice(
			"Being forced to ignore data or logical patterns.",
			"Working in an environment where people feel unsupported.",
			"Being stuck in a role with no room for original ideas.",
			"Constant chaos and a complete lack of structure.",
			"Missing out on growth opportunities due to slow decisions.",
			"Endless talking without any actual execution or 'doing'.",
		),
	},
	{
		ID:       4,
		Category: "Exciting Progress",
		Text:     "What kind of progress gets you most excited?",
		Kind:     KindChoice,
		Options: choice(
			"Discovering a new 'why' or a strategic insight.",
			"A breakthrough in team dynamics or culture.",
			"A creative breakthrough that changes a brand or product.",
			"A system that can now handle 10x more work.",
			"A massive increase in market reach or sales.",
			"Taking full ownership of an outcome and delivering it.",
		),
	},
	{
		ID:       5,
		Category: "Daily Superpower",
		Text:     "Which of these best describes your natural talent?",
		Kind:     KindChoice,
		Options: choice(
			"Analyzing complex information to find the right path.",
			"Developing the potential of the people around me.",
			"Bringing new, creative ideas to life.",
			"Making sure operations run smoothly and perfectly.",
			"Winning people over and growing influence.",
			"Moving fast and building things from the ground up.",
		),
	},
	{
		ID:       6,
		Category: "Problem Solving",
		Text:     "How do you usually start solving a new problem?",
		Kind:     KindChoice,
		Options: choice(
			"Studying the facts and logical patterns first.",
			"Talking to the people involved to understand their needs.",
			"Brainstorming a completely different way to look at it.",
			"Breaking it down into a step-by-step process.",
			"Identifying who needs to be convinced to move forward.",
			"Testing a small version of the solution immediately.",
		),
	},
	{
		ID:       7,
		Category: "Personal Style",
		Text:     "Which word would your colleagues use to describe you best?",
		Kind:     KindChoice,
		Options: choice(
			"Analytical",
			"Empathetic",
			"Creative",
			"Structured",
			"Persuasive",
			"Practical",
		),
	},
	{
		ID:       8,
		Category: "AI Application",
		Text:     "What is your primary goal when using AI tools today?",
		Kind:     KindChoice,
		Options: choice(
			"To research, analyze data, and build strategies.",
			"To improve how I coach and communicate with others.",
			"To generate content, visuals, or new designs.",
			"To automate tasks and create efficient workflows.",
			"To improve marketing, sales, and market reach.",
			"To build new products and launch ventures faster.",
		),
	},
	{
		ID:       9,
		Category: "Automation View",
		Text:     "How do you feel about AI taking over repetitive tasks?",
		Kind:     KindChoice,
		Options: choice(
			"I want to move into even higher-level strategic thinking.",
			"I want to help people adapt to this new way of working.",
			"I want more time to create unique human work.",
			"I want to scale systems at a much faster pace.",
			"I want to focus more on market impact and growth.",
			"I want to build my own assets and own the results.",
		),
	},
	{
		ID:       10,
		Category: "Work Environment",
		Text:     "In which environment do you perform your best work?",
		Kind:     KindChoice,
		Options: choice(
			"Where quality and deep thinking are valued.",
			"Where supporting others is the main priority.",
			"Where there is total freedom to experiment.",
			"Where there are clear processes and high efficiency.",
			"Where the focus is on growth and winning.",
			"Where I have ownership and can move quickly.",
		),
	},
	{
		ID:       11,
		Category: "Pressure Handling",
		Text:     "How does your style change when you are under pressure?",
		Kind:     KindChoice,
		Options: choice(
			"I become more focused on precision and logic.",
			"I become more protective and supportive of the team.",
			"I become more inventive in finding shortcuts.",
			"I become more organized and process-driven.",
			"I become more decisive and assertive.",
			"I become more action-oriented and relentless.",
		),
	},
	{
		ID:       12,
		Category: "Project Priorities",
		Text:     "When leading a project, what is your top priority?",
		Kind:     KindChoice,
		Options: choice(
			"Ensuring the strategy is sound and logical.",
			"Ensuring the team is motivated and aligned.",
			"Ensuring the output is unique and creative.",
			"Ensuring the workflow is perfectly efficient.",
			"Ensuring the market impact is maximized.",
			"Ensuring the project is finished and delivered.",
		),
	},
	{
		ID:       13,
		Category: "Team Role",
		Text:     "Which role do you naturally fill in a team meeting?",
		Kind:     KindChoice,
		Options: choice(
			"The critical thinker who spots errors in the plan.",
			"The connector who makes sure everyone is heard.",
			"The ideator who suggests the 'wild' new direction.",
			"The organizer who takes notes and builds the timeline.",
			"The advocate who pushes for the best market outcome.",
			"The driver who asks 'how soon can we start?'",
		),
	},
	{
		ID:       14,
		Category: "Growth Focus",
		Text:     "What skill do you most want to improve right now?",
		Kind:     KindChoice,
		Options: choice(
			"My ability to use data for better decision-making.",
			"My ability to lead and coach a high-performing team.",
			"My ability to use new tools for creative production.",
			"My ability to build automated business systems.",
			"My ability to influence and grow a brand's reach.",
			"My ability to build and scale a new venture.",
		),
	},
	{
		ID:       15,
		Category: "Communication",
		Text:     "What is your preferred way to share a big idea?",
		Kind:     KindChoice,
		Options: choice(
			"Using facts, data points, and a logical structure.",
			"Through a 1-on-1 conversation or coaching session.",
			"Using a visual presentation or a creative story.",
			"By showing a clear plan and process map.",
			"By pitching the growth and impact potential.",
			"By showing a working prototype or early results.",
		),
	},
	{
		ID:       16,
		Category: "Problem Lens",
		Text:     "How do you see most problems in business?",
		Kind:     KindChoice,
		Options: choice(
			"As information that needs to be better understood.",
			"As people challenges that need to be resolved.",
			"As opportunities to reinvent how things look.",
			"As inefficient systems that need to be fixed.",
			"As barriers to growth that need to be removed.",
			"As tasks that need to be finished immediately.",
		),
	},
	{
		ID:       17,
		Category: "Efficiency Tilt",
		Text:     "What does 'Efficiency' mean to you?",
		Kind:     KindChoice,
		Options: choice(
			"Finding the smartest path with the least waste.",
			"Helping people work together without conflict.",
			"Spending less time on boring tasks to spend more on art.",
			"Building a machine that works while I sleep.",
			"Converting effort into results at the highest rate.",
			"Shipping a product faster than anyone else.",
		),
	},
	{
		ID:       18,
		Category: "Strategic Tilt",
		Text:     "What is your long-term goal in your career?",
		Kind:     KindChoice,
		Options: choice(
			"To be a respected expert and advisor.",
			"To be a leader who changes people's lives.",
			"To leave a legacy of original creative work.",
			"To build a system that scales globally.",
			"To have massive market influence and impact.",
			"To build and own a portfolio of successful projects.",
		),
	},
	{
		ID:       19,
		Category: "Comfort with Uncertainty",
		Text:     "I am comfortable making big moves even when the future is not clear.",
		Subtext:  "(1: I prefer certainty - 5: I embrace risk)",
		Kind:     KindScale,
		Min:      1,
		Max:      5,
	},
	{
		ID:       20,
		Category: "Ownership Desire",
		Text:     "I prefer to have full responsibility for the final outcome of my work.",
		Subtext:  "(1: I prefer shared responsibility - 5: I love total ownership)",
		Kind:     KindScale,
		Min:      1,
		Max:      5,
	},
	{
		ID:       21,
		Category: "Need for Structure",
		Text:     "I perform best when there are clear rules and a defined process to follow.",
		Subtext:  "(1: I hate rules - 5: I need clear structure)",
		Kind:     KindScale,
		Min:      1,
		Max:      5,
	},
	{
		ID:       22,
		Category: "Continuous Learning",
		Text:     "I am constantly spending my own time learning new technologies or skills.",
		Subtext:  "(1: Not really - 5: Always)",
		Kind:     KindScale,
		Min:      1,
		Max:      5,
	},
	{
		ID:       23,
		Category: "Impact Drive",
		Text:     "My main goal is to have a high visible impact on the market or industry.",
		Subtext:  "(1: I prefer to work quietly - 5: I want high visibility)",
		Kind:     KindScale,
		Min:      1,
		Max:      5,
	},
}
