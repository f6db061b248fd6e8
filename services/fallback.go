package services

import (
	"encoding/json"
	"fmt"
)

// FallbackBundle liefert ein vollständiges, handgeschriebenes Lesson-Bundle
// für den Fall, dass keine Generierung möglich ist (kein API-Key, Client-
// oder Parse-Fehler). Der Inhalt reicht für eine echte Unterrichtsstunde.
// Auch dieses Bundle läuft durch den Normalizer - Normalisierung ist das
// letzte Gate für jeden Output, vertrauenswürdig oder nicht.
func FallbackBundle(bn *BundleNormalizer, title, level, language, style string) Bundle {
	raw := Bundle{
		Slides:   fallbackSlides(title, level),
		Game:     fallbackGame(),
		Practice: fallbackPractice(),
	}
	b, err := bn.Normalize(toRawObject(raw))
	if err != nil {
		// Unerreichbar: toRawObject liefert immer ein Objekt.
		panic(err)
	}
	return b
}

// toRawObject bringt ein typisiertes Bundle zurück auf die untrusted Seite
// der Normalizer-Grenze.
func toRawObject(b Bundle) map[string]any {
	buf, _ := json.Marshal(b)
	var m map[string]any
	_ = json.Unmarshal(buf, &m)
	return m
}

func fallbackSlides(title, level string) []Slide {
	return []Slide{
		// Opening
		{
			Type:         SlideHook,
			Title:        title,
			Subtitle:     fmt.Sprintf("Level: %s", level),
			Prompt:       "Think about this: When was the last time you needed to use English in real life? What did you want to say?",
			Keywords:     []string{"real-world", "practical", "everyday", "communication", "confidence"},
			HeroImage:    "classroom",
			TeacherNotes: "Ask 2-3 students to share their experiences. Accept all answers warmly. This activates prior knowledge.",
		},
		{
			Type:  SlideObjectives,
			Title: "🎯 Today's Learning Goals",
			Objectives: []string{
				"Learn 12+ essential vocabulary words with correct pronunciation",
				"Master the key grammar pattern and use it confidently",
				"Practice real conversations through role-play activities",
				"Build fluency through speaking exercises with partners",
				"Apply what you learned in realistic situations",
			},
			TeacherNotes: "Read objectives aloud. Ask: 'Which goal are you most excited about?' This creates buy-in.",
		},
		{
			Type:     SlideContext,
			Title:    "📍 Real-Life Context",
			Subtitle: "When and where do we use this?",
			Content: []string{
				"🏪 At shops, restaurants, and cafés",
				"🏥 At hospitals, clinics, and pharmacies",
				"🏫 At school talking to teachers and friends",
				"🏠 At home with family members",
				"📱 On the phone or sending messages",
				"✈️ When traveling to new places",
				"💼 In job interviews and at work",
				"🤝 Meeting new people and making friends",
			},
			TeacherNotes: "Point to each context. Ask: 'Have you been in this situation?' Build relevance.",
		},

		// Vocabulary
		{
			Type:     SlideVocabulary,
			Title:    "📚 Essential Vocabulary (Part 1)",
			Subtitle: "Core words you must know",
			Vocabulary: []VocabEntry{
				{Word: "order", Meaning: "สั่ง (อาหาร/เครื่องดื่ม)", Example: "I'd like to order a coffee.", IPA: "/ˈɔːrdər/"},
				{Word: "menu", Meaning: "เมนู/รายการ", Example: "Can I see the menu, please?", IPA: "/ˈmenjuː/"},
				{Word: "bill", Meaning: "บิล/ใบเสร็จ", Example: "Could we have the bill?", IPA: "/bɪl/"},
				{Word: "recommend", Meaning: "แนะนำ", Example: "What do you recommend?", IPA: "/ˌrekəˈmend/"},
				{Word: "reserve", Meaning: "จอง", Example: "I'd like to reserve a table.", IPA: "/rɪˈzɜːrv/"},
				{Word: "available", Meaning: "ว่าง/มี", Example: "Is this table available?", IPA: "/əˈveɪləbl/"},
			},
			TeacherNotes: "Teach each word: 1) Show word 2) Say it 3) Students repeat 3x 4) Show example 5) Students make their own sentence.",
		},
		{
			Type:     SlideVocabulary,
			Title:    "📚 Essential Vocabulary (Part 2)",
			Subtitle: "More useful expressions",
			Vocabulary: []VocabEntry{
				{Word: "to go / takeaway", Meaning: "ซื้อกลับ", Example: "Can I get it to go?", IPA: "/tuː ɡoʊ/"},
				{Word: "for here", Meaning: "ทานที่นี่", Example: "For here, please.", IPA: "/fɔːr hɪr/"},
				{Word: "change", Meaning: "เงินทอน", Example: "Here's your change.", IPA: "/tʃeɪndʒ/"},
				{Word: "receipt", Meaning: "ใบเสร็จ", Example: "Can I have a receipt?", IPA: "/rɪˈsiːt/"},
				{Word: "tip", Meaning: "ทิป", Example: "Is tip included?", IPA: "/tɪp/"},
				{Word: "special", Meaning: "พิเศษ/เมนูพิเศษ", Example: "What's today's special?", IPA: "/ˈspeʃəl/"},
			},
			TeacherNotes: "Quick drill: Teacher says Thai → Students say English. Then reverse. Make it a game!",
		},
		{
			Type:     SlideVocabulary,
			Title:    "📚 Essential Vocabulary (Part 3)",
			Subtitle: "Advanced expressions",
			Vocabulary: []VocabEntry{
				{Word: "allergy", Meaning: "แพ้", Example: "I have a nut allergy.", IPA: "/ˈælərdʒi/"},
				{Word: "vegetarian", Meaning: "มังสวิรัติ", Example: "Do you have vegetarian options?", IPA: "/ˌvedʒəˈteriən/"},
				{Word: "spicy", Meaning: "เผ็ด", Example: "Not too spicy, please.", IPA: "/ˈspaɪsi/"},
				{Word: "portion", Meaning: "ขนาด/ส่วน", Example: "Is this a large portion?", IPA: "/ˈpɔːrʃn/"},
				{Word: "refill", Meaning: "เติม/รีฟิล", Example: "Can I get a refill?", IPA: "/ˈriːfɪl/"},
				{Word: "complain", Meaning: "ร้องเรียน", Example: "I'd like to complain about the service.", IPA: "/kəmˈpleɪn/"},
			},
			TeacherNotes: "These are bonus words for stronger students. Spend less time here if class is struggling.",
		},

		// Grammar / concept
		{
			Type:     SlideConcept,
			Title:    "🧠 Key Grammar Pattern",
			Subtitle: "Making polite requests",
			Pattern:  "Can I + verb + (object) + please?\nCould I + verb + (object) + please?\nMay I + verb + (object) + please?",
			Highlights: []ConceptHighlight{
				{Label: "Can I", Note: "Polite - use with friends, casual situations"},
				{Label: "Could I", Note: "More polite - use with strangers, formal situations"},
				{Label: "May I", Note: "Most polite - use with teachers, bosses, elderly"},
				{Label: "please", Note: "Always add 'please' to sound more polite!"},
			},
			CommonMistakes: []string{
				"❌ 'I want coffee.' → ✅ 'Can I have a coffee, please?'",
				"❌ 'Give me the menu.' → ✅ 'Could I see the menu, please?'",
				"❌ 'Bill!' → ✅ 'May I have the bill, please?'",
				"❌ Using 'Can you...' when asking for yourself",
			},
			TeacherNotes: "Write pattern on board. Demonstrate with gestures. Students copy in notebooks.",
		},
		{
			Type:     SlideConcept,
			Title:    "🧠 More Useful Patterns",
			Subtitle: "Offering and responding",
			Pattern:  "Would you like + noun/to + verb?\nI'd like + noun/to + verb.\nYes, please. / No, thank you.",
			Highlights: []ConceptHighlight{
				{Label: "Would you like...?", Note: "Polite way to offer something"},
				{Label: "I'd like...", Note: "Polite way to say what you want (= I would like)"},
				{Label: "Yes, please.", Note: "Accepting an offer politely"},
				{Label: "No, thank you.", Note: "Refusing an offer politely"},
			},
			CommonMistakes: []string{
				"❌ 'You want coffee?' → ✅ 'Would you like some coffee?'",
				"❌ 'I want to order.' → ✅ 'I'd like to order, please.'",
				"❌ 'No.' → ✅ 'No, thank you.'",
			},
			TeacherNotes: "Model a mini-dialogue. Then students practice in pairs: offer → accept/refuse.",
		},
		{
			Type:     SlidePronunciation,
			Title:    "🎤 Pronunciation Focus",
			Subtitle: "Sound natural and confident",
			Content: []string{
				"🔊 Stress the important words: 'Can I HAVE a COFFEE, please?'",
				"🔊 Link words together: 'Can-I' sounds like 'CanI' /kænai/",
				"🔊 'Could I' sounds like /kʊdai/ - the 'L' is silent!",
				"🔊 Rise your voice at the end of questions ↗️",
				"🔊 'Please' at the end: lower and softer ↘️",
				"🔊 Practice: slow → medium → natural speed",
			},
			Examples: []ExamplePair{
				{EN: "Can I have... /kænai hæv/", TH: "เชื่อมเสียง Can + I"},
				{EN: "Could I get... /kʊdai ɡet/", TH: "ตัว L เงียบ"},
				{EN: "Would you like... /wʊdʒuː laɪk/", TH: "เชื่อมเสียง Would + you"},
				{EN: "I'd like... /aɪd laɪk/", TH: "ย่อจาก I would"},
			},
			TeacherNotes: "Play audio if available. Otherwise, model clearly and have students repeat. Focus on linking sounds.",
		},

		// Examples
		{
			Type:     SlideExamples,
			Title:    "💬 Example Sentences (Part 1)",
			Subtitle: "Ordering and requesting",
			Examples: []ExamplePair{
				{EN: "Can I have a latte, please?", TH: "ขอลาเต้แก้วนึงค่ะ/ครับ"},
				{EN: "Could I see the menu?", TH: "ขอดูเมนูหน่อยได้ไหมคะ/ครับ"},
				{EN: "May I have the bill, please?", TH: "ขอบิลด้วยค่ะ/ครับ"},
				{EN: "I'd like to order now.", TH: "ฉันอยากสั่งตอนนี้ค่ะ/ครับ"},
				{EN: "Can I get this to go?", TH: "ขอใส่กลับบ้านได้ไหมคะ/ครับ"},
				{EN: "Could I have some water?", TH: "ขอน้ำเปล่าหน่อยได้ไหมคะ/ครับ"},
				{EN: "What do you recommend?", TH: "แนะนำอะไรดีคะ/ครับ"},
				{EN: "Is this spicy?", TH: "อันนี้เผ็ดไหมคะ/ครับ"},
			},
			TeacherNotes: "Choral repetition: Teacher says → Whole class repeats. Then individual students.",
		},
		{
			Type:     SlideExamples,
			Title:    "💬 Example Sentences (Part 2)",
			Subtitle: "Responding and clarifying",
			Examples: []ExamplePair{
				{EN: "Yes, please. That sounds great.", TH: "ค่ะ/ครับ ฟังดูดี"},
				{EN: "No, thank you. I'm fine.", TH: "ไม่ค่ะ/ครับ ขอบคุณ"},
				{EN: "Sorry, could you repeat that?", TH: "ขอโทษค่ะ/ครับ พูดอีกทีได้ไหม"},
				{EN: "How much is this?", TH: "อันนี้ราคาเท่าไหร่คะ/ครับ"},
				{EN: "Do you have anything cheaper?", TH: "มีอะไรถูกกว่านี้ไหมคะ/ครับ"},
				{EN: "Can I pay by card?", TH: "จ่ายบัตรได้ไหมคะ/ครับ"},
				{EN: "Keep the change.", TH: "ไม่ต้องทอนค่ะ/ครับ"},
			},
			TeacherNotes: "Students practice in pairs: Student A reads English, Student B says Thai meaning.",
		},

		// Guided practice
		{
			Type:     SlideGuidedPractice,
			Title:    "✏️ Practice Exercise 1",
			Subtitle: "Choose the best answer",
			Items: []GuidedItem{
				{Q: "_____ a coffee, please.", Choices: []string{"Can I have", "I want", "Give me", "I take"}, Answer: "Can I have"},
				{Q: "_____ see the menu?", Choices: []string{"Could I", "I can", "Want I", "Let me"}, Answer: "Could I"},
				{Q: "_____ some sugar, please?", Choices: []string{"May I have", "I need", "Bring me", "Want"}, Answer: "May I have"},
				{Q: "I _____ to order the steak.", Choices: []string{"'d like", "wanting", "will want", "am want"}, Answer: "'d like"},
				{Q: "_____ you like anything else?", Choices: []string{"Would", "Do", "Are", "Can"}, Answer: "Would"},
			},
			TeacherNotes: "Students work individually (2 min), then check with partner, then check as class. Discuss wrong answers.",
		},
		{
			Type:     SlideGuidedPractice,
			Title:    "✏️ Practice Exercise 2",
			Subtitle: "Complete the conversation",
			Items: []GuidedItem{
				{Q: "Waiter: Are you ready to _____?", Choices: []string{"order", "menu", "bill", "tip"}, Answer: "order"},
				{Q: "Customer: Yes, _____ the pasta, please.", Choices: []string{"I'd like", "I want", "Give", "Bring"}, Answer: "I'd like"},
				{Q: "Waiter: Would you like anything to _____?", Choices: []string{"drink", "drinking", "drank", "drinks"}, Answer: "drink"},
				{Q: "Customer: _____, I'll have water.", Choices: []string{"Yes, please", "Yes, I want", "Give me", "I need"}, Answer: "Yes, please"},
				{Q: "Customer: Can I have the _____, please?", Choices: []string{"bill", "tip", "order", "menu"}, Answer: "bill"},
			},
			TeacherNotes: "Read the conversation aloud together. Then students role-play in pairs.",
		},

		// Dialogue
		{
			Type:     SlideDialogue,
			Title:    "🎭 Role-Play Dialogue 1",
			Subtitle: "At a coffee shop",
			Scenario: "A customer orders at a coffee shop. Practice with a partner!",
			Lines: []DialogueLine{
				{Speaker: "Staff", Text: "Hi! Welcome to Star Coffee. What can I get you?"},
				{Speaker: "Customer", Text: "Hi! Can I have a latte, please?"},
				{Speaker: "Staff", Text: "Sure! Would you like it hot or iced?"},
				{Speaker: "Customer", Text: "Iced, please."},
				{Speaker: "Staff", Text: "What size? Small, medium, or large?"},
				{Speaker: "Customer", Text: "Medium, please. How much is it?"},
				{Speaker: "Staff", Text: "That's 85 baht. For here or to go?"},
				{Speaker: "Customer", Text: "To go, please. Here you are."},
				{Speaker: "Staff", Text: "Thank you! Your drink will be ready in a moment."},
				{Speaker: "Customer", Text: "Thanks!"},
			},
			TeacherNotes: "Demo with a strong student first. Then all students practice in pairs. Switch roles!",
		},
		{
			Type:     SlideDialogue,
			Title:    "🎭 Role-Play Dialogue 2",
			Subtitle: "At a restaurant",
			Scenario: "A customer orders food at a restaurant. Practice with a partner!",
			Lines: []DialogueLine{
				{Speaker: "Waiter", Text: "Good evening! Here's the menu. I'll give you a moment."},
				{Speaker: "Customer", Text: "Thank you. Actually, I'm ready to order."},
				{Speaker: "Waiter", Text: "What would you like?"},
				{Speaker: "Customer", Text: "I'd like the grilled chicken, please."},
				{Speaker: "Waiter", Text: "Excellent choice. Would you like any sides?"},
				{Speaker: "Customer", Text: "Could I have some salad?"},
				{Speaker: "Waiter", Text: "Of course. Anything to drink?"},
				{Speaker: "Customer", Text: "Just water, please."},
				{Speaker: "Waiter", Text: "Perfect. Your order will be ready soon."},
				{Speaker: "Customer", Text: "Thank you very much!"},
			},
			TeacherNotes: "Students can change the food items to their preferences. Encourage creativity!",
		},

		// Production
		{
			Type:     SlideProduction,
			Title:    "🎤 Speaking Task 1",
			Subtitle: "Create your own sentences",
			Tasks: []string{
				"📝 Write 5 polite requests using 'Can I / Could I / May I'",
				"💬 Practice saying each sentence 3 times",
				"👥 Share your sentences with a partner",
				"🔄 Listen to your partner's sentences and respond appropriately",
				"⭐ Choose your best sentence to share with the class",
			},
			TeacherNotes: "Walk around and help students who are struggling. Give praise for good attempts!",
		},
		{
			Type:     SlideProduction,
			Title:    "🎤 Speaking Task 2",
			Subtitle: "Role-play challenge",
			Tasks: []string{
				"👥 Work with a partner",
				"🎭 Create your OWN dialogue (minimum 8 lines)",
				"📍 Choose a setting: coffee shop, restaurant, store, or hotel",
				"💡 Use at least 5 vocabulary words from today's lesson",
				"✨ Use at least 3 polite request patterns",
				"🎬 Perform your dialogue for another pair or the class",
			},
			TeacherNotes: "Give students 5-7 minutes to prepare. Then have 2-3 pairs perform. Give positive feedback!",
		},

		// Review
		{
			Type:     SlideReview,
			Title:    "📋 Lesson Summary",
			Subtitle: "What we learned today",
			Summary: []string{
				"📚 Key vocabulary: order, menu, bill, recommend, reserve, to go, receipt, tip",
				"🧠 Pattern 1: Can I / Could I / May I + verb + please?",
				"🧠 Pattern 2: Would you like...? / I'd like...",
				"🔊 Pronunciation: Link sounds together, stress important words",
				"🎭 Practice: Role-play ordering at a café and restaurant",
				"💡 Remember: Always use 'please' and 'thank you' to be polite!",
			},
			TeacherNotes: "Quick recap. Ask students to tell you one thing they remember without looking at notes.",
		},
		{
			Type:     SlideReview,
			Title:    "⚡ Quick Check",
			Subtitle: "Can you answer these?",
			Summary: []string{
				"❓ How do you politely ask for the menu?",
				"❓ How do you politely order a coffee?",
				"❓ What's the difference between 'Can I' and 'Could I'?",
				"❓ How do you ask for the bill?",
				"❓ What does 'to go' mean?",
				"❓ How do you respond to 'Would you like anything else?'",
			},
			TeacherNotes: "Call on random students to answer. If they struggle, let a classmate help.",
		},

		// Exit ticket
		{
			Type:     SlideExitTicket,
			Title:    "🎫 Exit Ticket",
			Subtitle: "Before you leave...",
			Questions: []string{
				"✍️ Write ONE polite request you can use tomorrow",
				"💬 Say your sentence to your partner",
				"🤔 What was the most useful thing you learned today?",
				"⭐ Rate your confidence: 1-5 stars",
			},
			TeacherNotes: "Collect exit tickets or have students share verbally. Use this to plan next lesson.",
		},
	}
}

func fallbackGame() map[string][]GameTile {
	return map[string][]GameTile{
		"1": {
			{Question: "Translate: ขอดูเมนูได้ไหม", Answer: "Can I see the menu?", Points: 10},
			{Question: "Translate: ขอกาแฟแก้วนึงค่ะ", Answer: "Can I have a coffee, please?", Points: 10},
			{Question: "Translate: ขอบิลด้วยค่ะ", Answer: "Could I have the bill, please?", Points: 10},
			{Question: "What does 'recommend' mean?", Answer: "แนะนำ", Points: 10},
			{Question: "What does 'reserve' mean?", Answer: "จอง", Points: 10},
			{Question: "What does 'available' mean?", Answer: "ว่าง/มี", Points: 10},
			{Question: "Translate: ซื้อกลับบ้าน", Answer: "To go / Takeaway", Points: 15},
			{Question: "Translate: ทานที่นี่", Answer: "For here", Points: 15},
			{Question: "What does 'receipt' mean?", Answer: "ใบเสร็จ", Points: 10},
			{Question: "What does 'tip' mean?", Answer: "ทิป", Points: 10},
			{Question: "Which is MORE polite: Can I or Could I?", Answer: "Could I", Points: 15},
			{Question: "What does 'allergy' mean?", Answer: "แพ้", Points: 10},
			{Question: "Complete: I ___ like to order.", Answer: "'d (would)", Points: 15},
			{Question: "How do you respond to 'Would you like anything else?' (Yes)", Answer: "Yes, please.", Points: 10},
			{Question: "How do you respond to 'Would you like anything else?' (No)", Answer: "No, thank you.", Points: 10},
			{Question: "What does 'vegetarian' mean?", Answer: "มังสวิรัติ", Points: 10},
			{Question: "Complete: ___ you like some water?", Answer: "Would", Points: 15},
			{Question: "What does 'portion' mean?", Answer: "ขนาด/ส่วน", Points: 10},
			{Question: "What does 'refill' mean?", Answer: "เติม/รีฟิล", Points: 10},
			{Question: "Translate: อันนี้เผ็ดไหม", Answer: "Is this spicy?", Points: 15},
			{Question: "Translate: จ่ายบัตรได้ไหม", Answer: "Can I pay by card?", Points: 15},
			{Question: "What does 'complain' mean?", Answer: "ร้องเรียน", Points: 10},
			{Question: "Translate: ราคาเท่าไหร่", Answer: "How much is it?", Points: 10},
			{Question: "What's another word for 'takeaway'?", Answer: "To go", Points: 10},
		},
		"2": {
			{Question: "Make a request with 'Can I': coffee", Answer: "Can I have a coffee, please?", Points: 15},
			{Question: "Make a request with 'Could I': menu", Answer: "Could I see the menu, please?", Points: 15},
			{Question: "Make a request with 'May I': bill", Answer: "May I have the bill, please?", Points: 15},
			{Question: "Use 'I'd like' to order: steak", Answer: "I'd like the steak, please.", Points: 15},
			{Question: "Make a request with 'Can I': water", Answer: "Can I have some water, please?", Points: 15},
			{Question: "Make an offer with 'Would you like': dessert", Answer: "Would you like some dessert?", Points: 15},
			{Question: "Accept politely: 'Would you like more coffee?'", Answer: "Yes, please.", Points: 10},
			{Question: "Refuse politely: 'Would you like more coffee?'", Answer: "No, thank you.", Points: 10},
			{Question: "Ask for recommendation politely", Answer: "What do you recommend?", Points: 15},
			{Question: "Ask if something is spicy", Answer: "Is this spicy?", Points: 10},
			{Question: "Ask about the price", Answer: "How much is this?", Points: 10},
			{Question: "Request something 'to go'", Answer: "Can I get this to go, please?", Points: 15},
			{Question: "Make a request with 'Could I': table by window", Answer: "Could I have a table by the window?", Points: 20},
			{Question: "Say you're ready to order", Answer: "I'm ready to order.", Points: 10},
			{Question: "Ask for the receipt", Answer: "Can I have the receipt, please?", Points: 15},
			{Question: "Say 'keep the change'", Answer: "Keep the change.", Points: 10},
			{Question: "Ask if you can pay by card", Answer: "Can I pay by card?", Points: 15},
			{Question: "Make a reservation request", Answer: "I'd like to make a reservation.", Points: 15},
			{Question: "Ask if table is available", Answer: "Is this table available?", Points: 15},
			{Question: "Request less spicy food", Answer: "Not too spicy, please.", Points: 10},
			{Question: "Ask for vegetarian options", Answer: "Do you have vegetarian options?", Points: 15},
			{Question: "Request a refill", Answer: "Can I get a refill, please?", Points: 15},
			{Question: "Ask them to repeat", Answer: "Sorry, could you repeat that?", Points: 15},
			{Question: "Thank the server", Answer: "Thank you very much!", Points: 10},
		},
		"3": {
			{Question: "What do you say first when entering a restaurant?", Answer: "Hello / Good evening", Points: 10},
			{Question: "Staff asks: 'For here or to go?' You want to eat there. What do you say?", Answer: "For here, please.", Points: 15},
			{Question: "You ordered the wrong food. How do you politely fix it?", Answer: "Excuse me, I ordered... not...", Points: 20},
			{Question: "The food is cold. How do you politely complain?", Answer: "Excuse me, this is cold.", Points: 20},
			{Question: "You need more time to decide. What do you say?", Answer: "Could I have a few more minutes?", Points: 15},
			{Question: "Staff asks: 'How was everything?' (It was good)", Answer: "It was delicious, thank you!", Points: 10},
			{Question: "You want to split the bill. What do you say?", Answer: "Can we split the bill?", Points: 15},
			{Question: "You need the WiFi password. Ask politely.", Answer: "Could I have the WiFi password?", Points: 15},
			{Question: "You're allergic to nuts. How do you ask?", Answer: "Does this have nuts? I have an allergy.", Points: 20},
			{Question: "You want to order the same as your friend. What do you say?", Answer: "I'll have the same, please.", Points: 15},
			{Question: "The waiter brings the wrong order. What do you say?", Answer: "Sorry, I think there's been a mistake.", Points: 20},
			{Question: "How do you get the waiter's attention politely?", Answer: "Excuse me...", Points: 10},
			{Question: "You want extra napkins. Ask politely.", Answer: "Could I have some extra napkins?", Points: 15},
			{Question: "You finished and want to pay. What do you say?", Answer: "Could I have the bill, please?", Points: 15},
			{Question: "How do you say 'I'm still deciding'?", Answer: "I'm still looking / I need more time.", Points: 15},
			{Question: "The service was great. How do you compliment?", Answer: "The service was excellent!", Points: 15},
			{Question: "You want to try before buying. Ask politely.", Answer: "Can I try this first?", Points: 15},
			{Question: "You want the food less sweet. What do you say?", Answer: "Not too sweet, please.", Points: 15},
			{Question: "Ask if the tip is included", Answer: "Is tip included?", Points: 15},
			{Question: "You want to take leftovers home. What do you say?", Answer: "Can I get a box for this?", Points: 15},
			{Question: "You're looking for the bathroom. Ask politely.", Answer: "Excuse me, where's the bathroom?", Points: 10},
			{Question: "You want to change your order. What do you say?", Answer: "Actually, can I change my order?", Points: 15},
			{Question: "Thank them at the end of the meal", Answer: "Thank you, everything was great!", Points: 10},
			{Question: "Say goodbye when leaving", Answer: "Thank you. Have a nice day!", Points: 10},
		},
	}
}

func fallbackPractice() []PracticeQuestion {
	return []PracticeQuestion{
		{Question: "How do you politely ask for a coffee?", Choices: []string{"Can I have a coffee, please?", "I want coffee.", "Give me coffee.", "Coffee!"}, CorrectIndex: 0, Explain: "'Can I have... please?' is polite."},
		{Question: "Which is the MOST polite?", Choices: []string{"May I have the bill?", "Can I have the bill?", "I want the bill.", "Bill, please."}, CorrectIndex: 0, Explain: "'May I' is the most polite form."},
		{Question: "'To go' means:", Choices: []string{"Take away", "Eat here", "Order more", "Pay now"}, CorrectIndex: 0, Explain: "'To go' = takeaway = ซื้อกลับบ้าน"},
		{Question: "Staff: 'Would you like anything else?' You (No):", Choices: []string{"No, thank you.", "No.", "I don't want.", "Nothing."}, CorrectIndex: 0, Explain: "'No, thank you' is polite."},
		{Question: "How do you ask for recommendation?", Choices: []string{"What do you recommend?", "What's good?", "Tell me food.", "Good food?"}, CorrectIndex: 0, Explain: "'What do you recommend?' is natural and polite."},
		{Question: "'I'd like' is short for:", Choices: []string{"I would like", "I do like", "I did like", "I will like"}, CorrectIndex: 0, Explain: "I'd = I would"},
		{Question: "Which is correct?", Choices: []string{"Could I see the menu?", "Could I seeing the menu?", "Can I to see the menu?", "I could see menu?"}, CorrectIndex: 0, Explain: "Could I + verb (base form)"},
		{Question: "'Receipt' means:", Choices: []string{"ใบเสร็จ", "บิล", "เมนู", "ทิป"}, CorrectIndex: 0, Explain: "Receipt = ใบเสร็จ"},
		{Question: "How do you say you're ready to order?", Choices: []string{"I'm ready to order.", "I want order.", "Order now.", "Ready."}, CorrectIndex: 0, Explain: "'I'm ready to order' is natural."},
		{Question: "Fill in: _____ you like some dessert?", Choices: []string{"Would", "Do", "Are", "Is"}, CorrectIndex: 0, Explain: "Would you like...? is the offer pattern."},
		{Question: "'Vegetarian' means:", Choices: []string{"มังสวิรัติ", "เผ็ด", "หวาน", "เปรี้ยว"}, CorrectIndex: 0, Explain: "Vegetarian = ไม่ทานเนื้อสัตว์"},
		{Question: "How do you ask about the price?", Choices: []string{"How much is this?", "What price?", "How many?", "Cost?"}, CorrectIndex: 0, Explain: "'How much is this?' is correct."},
		{Question: "Staff: 'For here or to go?' You (eat here):", Choices: []string{"For here, please.", "Here.", "I eat here.", "Stay."}, CorrectIndex: 0, Explain: "'For here, please' is natural."},
		{Question: "'Allergy' means:", Choices: []string{"แพ้", "ชอบ", "ไม่ชอบ", "อร่อย"}, CorrectIndex: 0, Explain: "Allergy = การแพ้"},
		{Question: "Which is NOT polite?", Choices: []string{"Give me the menu!", "Can I see the menu?", "Could I see the menu?", "May I see the menu?"}, CorrectIndex: 0, Explain: "'Give me..!' sounds rude/commanding."},
		{Question: "How do you say 'ขอบิลด้วยค่ะ'?", Choices: []string{"Could I have the bill, please?", "Bill!", "I want bill.", "Give bill."}, CorrectIndex: 0, Explain: "'Could I have the bill, please?' is polite."},
		{Question: "'Portion' means:", Choices: []string{"ขนาด/ส่วน", "ราคา", "รสชาติ", "สี"}, CorrectIndex: 0, Explain: "Portion = ขนาด/ปริมาณ"},
		{Question: "How do you ask for a refill?", Choices: []string{"Can I get a refill?", "More drink!", "Refill!", "I want more."}, CorrectIndex: 0, Explain: "'Can I get a refill?' is polite."},
		{Question: "'Keep the change' means:", Choices: []string{"ไม่ต้องทอน", "ขอเงินทอน", "จ่ายเงิน", "แพงไป"}, CorrectIndex: 0, Explain: "Keep the change = ไม่ต้องทอน"},
		{Question: "Fill in: I _____ like the steak, please.", Choices: []string{"'d", "am", "will", "do"}, CorrectIndex: 0, Explain: "I'd like = I would like"},
		{Question: "How do you ask someone to repeat?", Choices: []string{"Sorry, could you repeat that?", "What?", "Again!", "I don't understand."}, CorrectIndex: 0, Explain: "'Could you repeat that?' is polite."},
		{Question: "'Spicy' means:", Choices: []string{"เผ็ด", "หวาน", "เค็ม", "เปรี้ยว"}, CorrectIndex: 0, Explain: "Spicy = เผ็ด"},
		{Question: "What do you say when the food is delicious?", Choices: []string{"This is delicious!", "Good.", "I like.", "Yummy yummy."}, CorrectIndex: 0, Explain: "'This is delicious!' is natural."},
		{Question: "How do you get the waiter's attention?", Choices: []string{"Excuse me...", "Hey!", "Waiter!", "Come here!"}, CorrectIndex: 0, Explain: "'Excuse me' is polite."},
		{Question: "'Reserve' means:", Choices: []string{"จอง", "สั่ง", "จ่าย", "กิน"}, CorrectIndex: 0, Explain: "Reserve = จอง"},
	}
}
