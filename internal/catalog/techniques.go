package catalog

// Techniques is the content library. Texts are expert-grounded and
// intentionally specific; authoring happens outside this service, this
// table is the shipped snapshot.
var Techniques = []Technique{

	// Connection rituals, one per love language plus universal fallbacks.

	{
		ID:     "gottman-6-second-kiss",
		Text:   "Before leaving the house today, kiss your partner for a full 6 seconds. Count in your head. No peck, a real, lingering kiss.",
		Why:    "Gottman found that a 6-second kiss is long enough to trigger a romantic feeling and short enough to fit into any morning. It takes your goodbye from autopilot to intentional.",
		Expert: "gottman",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			LoveLanguages: []string{"physical_touch"},
			FocusAreas:    []string{"friendship"},
			AnyProfile:    true,
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "10 seconds",
	},
	{
		ID:     "chapman-words-affirmation-specific",
		Text:   "Write and deliver one SPECIFIC verbal appreciation today. Not \"you're great\" but \"I noticed how you handled that situation — your patience there really impressed me.\" Character, not appearance.",
		Why:    "Chapman: for Words of Affirmation speakers, specific praise lands 10x harder than generic compliments. Specificity is the delivery mechanism.",
		Expert: "chapman",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			LoveLanguages: []string{"words_of_affirmation"},
			FocusAreas:    []string{"friendship"},
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "1 min",
	},
	{
		ID:     "chapman-acts-service-unrequested",
		Text:   "Do one meaningful task your partner usually handles — without being asked, without announcing it, without expecting credit. Let them discover it done.",
		Why:    "Chapman: for Acts of Service speakers, an unrequested act says \"I see you, I know what weighs on you, and I care enough to lighten it.\" The unrequested part is crucial.",
		Expert: "chapman",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			LoveLanguages: []string{"acts_of_service"},
			FocusAreas:    []string{"friendship"},
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "15-30 min",
	},
	{
		ID:     "chapman-quality-time-undivided",
		Text:   "Tonight, give your partner 15 minutes of UNDIVIDED attention. Phones in another room. TV off. Face each other. Ask open-ended questions and actually listen.",
		Why:    "Chapman: Quality Time speakers don't just want you in the room — they want you PRESENT. A distracted hour together feels lonelier than being alone.",
		Expert: "chapman",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			LoveLanguages: []string{"quality_time"},
			FocusAreas:    []string{"friendship"},
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "15 min",
	},
	{
		ID:     "chapman-physical-touch-throughout-day",
		Text:   "Today, incorporate 5 non-sexual touches throughout the day: a hand on their back walking by, holding hands for 30 seconds, a forehead kiss, a shoulder squeeze. Small, natural, frequent.",
		Why:    "Chapman: for Physical Touch speakers, casual affection throughout the day matters more than one big romantic gesture. The frequency matters more than the intensity.",
		Expert: "chapman",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			LoveLanguages:    []string{"physical_touch"},
			AttachmentStyles: []string{"anxious"},
			FocusAreas:       []string{"friendship", "attachment"},
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "ongoing",
	},
	{
		ID:     "chapman-gifts-thoughtful-free",
		Text:   "Give your partner one small, thoughtful gift today. It doesn't have to cost anything: a handwritten note in their jacket pocket, a flower from the yard, their favorite snack. The thought is the gift.",
		Why:    "Chapman: for Receiving Gifts speakers, the gift is a tangible symbol of \"you were thinking about me.\" The cost is irrelevant.",
		Expert: "chapman",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			LoveLanguages: []string{"receiving_gifts"},
			FocusAreas:    []string{"friendship"},
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "tatkin-evening-reunion",
		Text:   "Create an evening reunion ritual: when you first see each other after the day, stop everything. No phones. Full embrace for 20 seconds. Ask \"What was the highlight of your day?\" and listen completely.",
		Why:    "Tatkin: the reunion is the most important moment of the day. A 20-second hug releases oxytocin and cortisol drops. You're chemically telling each other \"you're safe now.\"",
		Expert: "tatkin",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			LoveLanguages:    []string{"physical_touch", "quality_time"},
			AttachmentStyles: []string{"anxious"},
			FocusAreas:       []string{"friendship"},
			AnyProfile:       true,
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "chapman-bilingual-love",
		Text:   "Today, express love in YOUR partner's language, not yours. If you're a Words person but they're an Acts person, do something helpful instead of saying something nice. Fluency comes with practice.",
		Why:    "Chapman: most people love in their own language and wonder why it doesn't land. The same amount of energy in the right language creates 10x the impact.",
		Expert: "chapman",
		Type:   "connection_ritual",
		Targets: TargetProfiles{
			FocusAreas: []string{"friendship"},
			AnyProfile: true,
		},
		Difficulty: 2,
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "super-weekly-review",
		Text:   "Sunday evening, do a 10-minute weekly relationship review: rate your week 1-10, name 2 moments that went well, name 1 hard thing without blame, pick what you want more of next week, and note one thing you appreciate about your partner.",
		Why:    "Unreviewed weeks blur together into vague dissatisfaction. A 10-minute review turns vague feelings into specific data and sets intention for the next week.",
		Expert: "gottman+robbins",
		Type:   "reflection",
		Targets: TargetProfiles{
			AnyProfile: true,
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "10 min",
	},

	// Communication.

	{
		ID:     "gottman-gentle-startup",
		Text:   "Take your biggest current complaint and rewrite it using this formula: \"I feel [emotion] about [specific situation] and I need [specific request].\" No \"you always\" or \"you never.\" Practice saying it out loud 3 times.",
		Why:    "Gottman proved that 96% of conversations end the way they begin. The gentle startup isn't weak — it's strategic. It gives your partner room to hear you instead of defend themselves.",
		Expert: "gottman",
		Type:   "communication",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious"},
			CyclePositions:   []string{"pursuer"},
			Horsemen:         []string{"criticism"},
			FocusAreas:       []string{"conflict", "communication"},
		},
		Difficulty: 3,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "voss-emotion-labeling",
		Text:   "When your partner is upset, use this exact phrase: \"It seems like you're feeling [frustrated/overwhelmed/hurt].\" Don't say \"I think you feel\" — say \"It seems like.\" Don't follow with advice. Just label and wait.",
		Why:    "Voss: labeling an emotion activates the prefrontal cortex and deactivates the amygdala. When someone hears their emotion accurately named, the intensity drops.",
		Expert: "voss",
		Type:   "communication",
		Targets: TargetProfiles{
			CyclePositions: []string{"pursuer", "withdrawer"},
			Horsemen:       []string{"criticism", "defensiveness"},
			FocusAreas:     []string{"communication", "conflict"},
			AnyProfile:     true,
		},
		Difficulty: 2,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "30 sec per use",
	},
	{
		ID:     "voss-mirror-technique",
		Text:   "In your next disagreement, repeat back the last 3 words your partner said as a question, then go silent. \"...completely ignored?\" It feels awkward the first time. Do it anyway.",
		Why:    "Voss used mirroring in hostage negotiations because it makes the other person feel heard and keeps them talking. Feeling heard drops defenses faster than any argument.",
		Expert: "voss",
		Type:   "communication",
		Targets: TargetProfiles{
			FocusAreas: []string{"communication"},
			AnyProfile: true,
		},
		Difficulty: 2,
		Stage:      "practice",
		Duration:   "ongoing",
	},

	// Horseman antidotes.

	{
		ID:     "antidote-criticism-to-complaint",
		Text:   "Take your current biggest resentment and convert it from criticism to complaint. Criticism attacks character; a complaint addresses behavior: \"I felt hurt when you made plans without checking with me. I need to feel considered.\" Practice the complaint version 3 times out loud.",
		Why:    "Gottman: criticism triggers defensiveness 100% of the time. Complaints can be heard. Same issue, completely different impact.",
		Expert: "gottman",
		Type:   "horseman_antidote",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious"},
			CyclePositions:   []string{"pursuer"},
			Horsemen:         []string{"criticism"},
			FocusAreas:       []string{"conflict"},
		},
		Difficulty: 3,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "antidote-contempt-appreciation-flood",
		Text:   "For the next 7 days, write down 3 things you GENUINELY appreciate about your partner each morning. On day 7, share all 21 items with them.",
		Why:    "Gottman: contempt is the #1 predictor of divorce, and its antidote is building a culture of appreciation. You can't feel contempt and genuine appreciation simultaneously.",
		Expert: "gottman",
		Type:   "horseman_antidote",
		Targets: TargetProfiles{
			Horsemen:   []string{"contempt"},
			FocusAreas: []string{"friendship"},
		},
		Difficulty: 2,
		Weeks:      []int{1, 2, 3},
		Stage:      "practice",
		Duration:   "3 min daily",
	},
	{
		ID:     "antidote-defensiveness-accept-2percent",
		Text:   "Think of the last complaint your partner made about you. Instead of building your case, find the 2% that's valid. Then say: \"You're right that I [specific valid point]. I can do better at that.\" Don't add a \"but.\" Full stop.",
		Why:    "Gottman: defensiveness is a counter-attack that says \"the problem is YOU.\" Accepting even 2% responsibility transforms the conversation.",
		Expert: "gottman+voss",
		Type:   "horseman_antidote",
		Targets: TargetProfiles{
			Horsemen:   []string{"defensiveness"},
			FocusAreas: []string{"conflict"},
		},
		Difficulty: 3,
		Weeks:      []int{3, 4, 5},
		Stage:      "practice",
		Duration:   "2 min",
	},
	{
		ID:     "antidote-stonewalling-announced-break",
		Text:   "Memorize this script for your next flooding moment: \"I want to work this out with you, but I'm overwhelmed right now. I need 20 minutes to calm down. I promise I'll come back.\" Then go do box breathing for 5 minutes.",
		Why:    "Gottman: stonewalling is flooding disguised as control. The antidote isn't \"don't leave\" — it's \"leave WITH a promise to return.\" The return proves the promise.",
		Expert: "gottman",
		Type:   "horseman_antidote",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"avoidant"},
			CyclePositions:   []string{"withdrawer"},
			Horsemen:         []string{"stonewalling"},
			FocusAreas:       []string{"conflict"},
		},
		Difficulty: 3,
		Weeks:      []int{3, 4, 5},
		Stage:      "practice",
		Duration:   "20 min",
	},

	// Positive lens.

	{
		ID:     "gottman-fondness-admiration",
		Text:   "Write down 5 qualities you genuinely admire about your partner — not what they DO, but who they ARE. Then tell them one tonight, with a specific example.",
		Why:    "Gottman: the Fondness & Admiration system is the antidote to contempt. You cannot feel contempt and admiration at the same time.",
		Expert: "gottman",
		Type:   "positive_lens",
		Targets: TargetProfiles{
			LoveLanguages: []string{"words_of_affirmation"},
			Horsemen:      []string{"contempt"},
			FocusAreas:    []string{"friendship"},
			AnyProfile:    true,
		},
		Difficulty: 2,
		Weeks:      []int{1, 2, 3},
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "positive-lens-gratitude-snapshot",
		Text:   "Write a 3-sentence gratitude snapshot of your partner this week: one thing they did, one thing they are, one thing you'd miss. Share it or keep it — writing it is the exercise.",
		Why:    "Your memory is biased toward negatives. A written snapshot corrects the record and trains your attention toward what's working.",
		Expert: "gottman",
		Type:   "positive_lens",
		Targets: TargetProfiles{
			FocusAreas: []string{"friendship"},
			AnyProfile: true,
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "positive-lens-reframe-negative",
		Text:   "Catch yourself in one negative thought about your partner today. Pause and find what's true AND good about them in that exact moment. Write both thoughts down.",
		Why:    "You can't control your first thought, but you can control your second. This is the reframe muscle.",
		Expert: "brown",
		Type:   "positive_lens",
		Targets: TargetProfiles{
			Horsemen:   []string{"contempt", "criticism"},
			FocusAreas: []string{"friendship"},
			AnyProfile: true,
		},
		Difficulty: 2,
		Stage:      "practice",
		Duration:   "2 min",
	},

	// Emotional regulation.

	{
		ID:     "gottman-repair-attempt",
		Text:   "Create a repair attempt with your partner NOW, before your next fight. Agree on a word, phrase, or gesture that means \"I love you AND I need us to slow down.\" Practice using it in a calm moment first.",
		Why:    "Gottman's most powerful finding: the #1 factor in relationship success isn't avoiding fights — it's the ability to repair during them.",
		Expert: "gottman",
		Type:   "emotional_regulation",
		Targets: TargetProfiles{
			Horsemen:   []string{"criticism", "contempt", "defensiveness", "stonewalling"},
			FocusAreas: []string{"conflict"},
			AnyProfile: true,
		},
		Difficulty: 2,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "10 min",
	},
	{
		ID:     "gottman-flooding-timeout",
		Text:   "When you feel flooded (heart racing, wanting to yell or shut down), say \"I need 20 minutes\" and walk away to self-soothe. No slamming doors, no parting shots. Come back when your body is calm.",
		Why:    "Gottman: when heart rate exceeds 100 BPM, your IQ drops 30 points. You literally can't think straight. Taking a break isn't weakness — it's wisdom.",
		Expert: "gottman",
		Type:   "emotional_regulation",
		Targets: TargetProfiles{
			CyclePositions: []string{"withdrawer"},
			Horsemen:       []string{"stonewalling"},
			FocusAreas:     []string{"conflict"},
		},
		Difficulty: 3,
		Weeks:      []int{3, 4},
		Stage:      "practice",
		Duration:   "20 min",
	},
	{
		ID:     "levine-anxious-self-soothing",
		Text:   "When you feel the anxious urge to reach out for the 3rd time, STOP. Set a 60-second timer. Write down: \"Right now I feel [emotion]. The story I'm telling myself is [fear]. The evidence says [facts].\" Then reach out ONCE, directly, if you still need to.",
		Why:    "Levine: the anxious attachment system creates a protest behavior cascade. The 60-second pause gives your prefrontal cortex time to catch up with your amygdala.",
		Expert: "levine",
		Type:   "emotional_regulation",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious"},
			CyclePositions:   []string{"pursuer"},
			Horsemen:         []string{"criticism"},
			FocusAreas:       []string{"attachment"},
		},
		Difficulty: 3,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "60 sec",
	},

	// Self-awareness.

	{
		ID:     "week1-emotional-journal",
		Text:   "Start an emotional reaction journal this week. Each time you feel a strong emotion about your partner, write: Time, Trigger, Emotion, Body sensation, What I did, What I wish I'd done.",
		Why:    "Self-awareness is the foundation of all change. You can't change what you can't see. After 7 days you'll see themes.",
		Expert: "johnson+brown",
		Type:   "self_awareness",
		Targets: TargetProfiles{
			AnyProfile: true,
		},
		Difficulty: 1,
		Weeks:      []int{1},
		Stage:      "assess",
		Duration:   "2 min per entry",
	},
	{
		ID:     "chapman-learn-partner-dialect",
		Text:   "Ask your partner directly: \"When do you feel MOST loved by me? Give me a specific example.\" Write down their answer. Then ask: \"When do you feel LEAST loved?\" Write that too.",
		Why:    "Chapman: knowing someone's love language is step 1. Knowing their dialect is mastery. The only way to know is to ask.",
		Expert: "chapman",
		Type:   "self_awareness",
		Targets: TargetProfiles{
			FocusAreas: []string{"friendship"},
			AnyProfile: true,
		},
		Difficulty: 2,
		Weeks:      []int{1, 2},
		Stage:      "assess",
		Duration:   "10 min",
	},
	{
		ID:     "week1-attachment-style-reflection",
		Text:   "Write one paragraph about how your attachment style showed up this week: one moment of anxious reaching or avoidant pulling away, and what you actually needed in that moment.",
		Why:    "Your attachment style was formed before you could speak. It's not your fault, but it is your responsibility to understand and work with it.",
		Expert: "levine",
		Type:   "self_awareness",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious", "avoidant", "fearful_avoidant"},
			FocusAreas:       []string{"attachment"},
		},
		Difficulty: 1,
		Weeks:      []int{1, 2},
		Stage:      "assess",
		Duration:   "10 min",
	},

	// Pattern awareness.

	{
		ID:     "week4-pattern-map",
		Text:   "Map your top 3 recurring arguments on paper: what triggers each, what each person says and does, how it escalates, how it ends, and what each person ACTUALLY needs.",
		Why:    "Most couples have the same 3-5 arguments on repeat. Mapping the pattern externalizes it — turns \"why do you always do this\" into \"there's our pattern again.\"",
		Expert: "johnson+gottman",
		Type:   "pattern_awareness",
		Targets: TargetProfiles{
			FocusAreas: []string{"conflict"},
			AnyProfile: true,
		},
		Difficulty: 3,
		Weeks:      []int{4},
		Stage:      "learn",
		Duration:   "20 min",
	},
	{
		ID:     "matchup-pursuer-withdrawer-cycle-break",
		Text:   "Together, draw your pursue-withdraw cycle on paper with arrows: \"When I pursue, you withdraw. That makes me feel scared, so I escalate. That makes you feel overwhelmed, so you shut down further.\" Label each step. Tape it to the fridge.",
		Why:    "Johnson: naming the cycle together is the single most powerful intervention in EFT. Externalizing the enemy unites the team.",
		Expert: "johnson",
		Type:   "pattern_awareness",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious", "avoidant"},
			CyclePositions:   []string{"pursuer", "withdrawer"},
			Horsemen:         []string{"criticism", "stonewalling"},
			FocusAreas:       []string{"conflict", "attachment"},
		},
		Difficulty: 4,
		Weeks:      []int{4, 5},
		Stage:      "practice",
		Duration:   "20 min",
	},

	// Attachment.

	{
		ID:     "matchup-anxious-avoidant-for-anxious",
		Text:   "When you feel the urge to reach out for reassurance for the 3rd time today, pause. Write down what you ACTUALLY need. Then express it ONCE, directly. One clear request. No hints. No repetition.",
		Why:    "Levine: in the anxious-avoidant trap, repeated bids feel like pursuit to the avoidant, triggering more withdrawal. One clear request is 10x more effective than 10 subtle bids.",
		Expert: "levine+johnson",
		Type:   "attachment",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious"},
			CyclePositions:   []string{"pursuer"},
			FocusAreas:       []string{"attachment"},
		},
		Difficulty: 3,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "matchup-anxious-avoidant-for-avoidant",
		Text:   "Today, initiate ONE moment of connection before your partner asks for it. A text that says \"thinking about you,\" a touch on the shoulder, asking about their day with genuine interest. Do it FIRST.",
		Why:    "Levine: when an avoidant partner initiates connection, it short-circuits the anxious partner's alarm system. One proactive reach equals hours of reduced anxiety.",
		Expert: "levine+johnson",
		Type:   "attachment",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"avoidant"},
			CyclePositions:   []string{"withdrawer"},
			Horsemen:         []string{"stonewalling"},
			FocusAreas:       []string{"attachment"},
		},
		Difficulty: 3,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "1 min",
	},
	{
		ID:     "levine-earned-security-practice",
		Text:   "Pick one secure behavior that doesn't come naturally to you — stating a need directly, staying present when you want to leave, tolerating silence — and practice it once today. Note what happened in your body.",
		Why:    "Levine: earned security is built one rep at a time. Acting secure before you feel secure is how the nervous system learns the new default.",
		Expert: "levine",
		Type:   "attachment",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious", "avoidant", "fearful_avoidant"},
			FocusAreas:       []string{"attachment"},
		},
		Difficulty: 4,
		Weeks:      []int{5, 6},
		Stage:      "transform",
		Duration:   "10 min",
	},

	// Vulnerability.

	{
		ID:     "brown-rumble-with-vulnerability",
		Text:   "Share one thing with your partner that you've been holding back because you're afraid of their reaction. Preface it with: \"I'm not looking for you to fix it — I just need you to hear it.\" Be specific. Be honest. Be brief.",
		Why:    "Brown: most relationship stagnation comes from both people hiding behind curated versions of themselves. One authentic disclosure can break through months of distance.",
		Expert: "brown",
		Type:   "vulnerability",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"avoidant", "fearful_avoidant"},
			CyclePositions:   []string{"withdrawer"},
			Horsemen:         []string{"stonewalling"},
			FocusAreas:       []string{"attachment", "friendship"},
		},
		Difficulty: 4,
		Weeks:      []int{4, 5},
		Stage:      "practice",
		Duration:   "5 min",
	},
	{
		ID:     "brown-story-telling-myself",
		Text:   "Next time you feel hurt by your partner, start your sentence with: \"The story I'm telling myself is...\" Then say the story out loud. Watch how it changes the conversation.",
		Why:    "Brown: our brains fill gaps with worst-case narratives. Naming the story as a story, not a fact, invites your partner to correct it instead of defend against it.",
		Expert: "brown",
		Type:   "vulnerability",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious", "fearful_avoidant"},
			CyclePositions:   []string{"pursuer"},
			FocusAreas:       []string{"communication", "attachment"},
		},
		Difficulty: 3,
		Weeks:      []int{2, 3, 4},
		Stage:      "practice",
		Duration:   "2 min",
	},

	// State management.

	{
		ID:     "robbins-state-change",
		Text:   "Before your next difficult conversation, change your physiology FIRST. Stand up straight, roll your shoulders back, take 5 deep power breaths, and say to yourself: \"I am someone who handles hard conversations with grace.\"",
		Why:    "Robbins: emotion is created by motion. Your physiology drives your psychology. This 60-second reset gives you access to your best self instead of your reactive self.",
		Expert: "robbins",
		Type:   "state_management",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"anxious", "fearful_avoidant"},
			CyclePositions:   []string{"pursuer"},
			Horsemen:         []string{"criticism", "contempt"},
			FocusAreas:       []string{"conflict"},
			AnyProfile:       true,
		},
		Difficulty: 1,
		Stage:      "practice",
		Duration:   "60 sec",
	},

	// Empathy.

	{
		ID:     "voss-perspective-taking",
		Text:   "Write about a recent fight from your PARTNER'S perspective. What were THEY feeling? What did THEY need? What did your face and tone look like from their side of the room?",
		Why:    "Empathy isn't agreeing — it's understanding. This exercise builds the muscle of seeing through their eyes.",
		Expert: "voss",
		Type:   "empathy",
		Targets: TargetProfiles{
			FocusAreas: []string{"conflict", "communication"},
			AnyProfile: true,
		},
		Difficulty: 3,
		Weeks:      []int{4, 5},
		Stage:      "practice",
		Duration:   "15 min",
	},

	// Desire and identity.

	{
		ID:     "perel-curiosity-over-familiarity",
		Text:   "Today, pretend you're meeting your partner for the first time. Notice one thing about them — a gesture, a laugh, a way they talk to others — that familiarity made invisible. Tell them what you noticed.",
		Why:    "Perel: desire needs mystery. Your partner is a separate, complex person you'll never fully know. That realization IS the spark.",
		Expert: "perel",
		Type:   "desire",
		Targets: TargetProfiles{
			AttachmentStyles: []string{"secure"},
			FocusAreas:       []string{"meaning", "friendship"},
			AnyProfile:       true,
		},
		Difficulty: 2,
		Weeks:      []int{5, 6},
		Stage:      "transform",
		Duration:   "ongoing",
	},
	{
		ID:     "robbins-identity-statement",
		Text:   "Write your relationship identity statement: \"I am the kind of partner who ___.\" Three specific behaviors, present tense. Read it out loud every morning this week.",
		Why:    "Robbins: lasting change is identity-level change. You don't rise to your goals — you fall to your identity. Rewrite the identity and the behavior follows.",
		Expert: "robbins",
		Type:   "identity",
		Targets: TargetProfiles{
			FocusAreas: []string{"meaning"},
			AnyProfile: true,
		},
		Difficulty: 3,
		Weeks:      []int{5, 6},
		Stage:      "transform",
		Duration:   "5 min",
	},
	{
		ID:     "week6-relationship-mission-statement",
		Text:   "Together, write your relationship mission statement. What do you stand for? What kind of couple do you want to be? Distill it to 3 sentences. Post it somewhere you both see daily.",
		Why:    "Couples with a shared narrative and purpose weather storms better because they have an anchor. This clarifies why you chose each other and what you're building.",
		Expert: "gottman+robbins",
		Type:   "shared_meaning",
		Targets: TargetProfiles{
			FocusAreas: []string{"meaning"},
			AnyProfile: true,
		},
		Difficulty: 3,
		Weeks:      []int{6},
		Stage:      "transform",
		Duration:   "20 min",
	},
}
