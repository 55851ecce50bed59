package matcher

// DefaultUserGreetings are the salutations recognised in user input.
func DefaultUserGreetings() []string {
	return []string{"hi", "hello", "greetings", "whatsapp", "hey", "halo", "howdy", "good morning", "good evening"}
}

// DefaultBotGreetings are the replies sent back to a salutation.
func DefaultBotGreetings() []string {
	return []string{"hi", "hello", "hey", "halo", "greetings", "howdy", "hi there", "hello there"}
}

// DefaultPrompts is the built-in prompt table, most specific triggers first.
func DefaultPrompts() []PromptRule {
	return []PromptRule{
		{"what is chronic kidney disease", "Chronic kidney disease (CKD) means your kidneys are damaged and can't filter blood the way they should."},
		{"symptoms of chronic kidney disease", "Symptoms of CKD include nausea, vomiting, loss of appetite, fatigue, and changes in urination."},
		{"causes of chronic kidney disease", "Common causes of CKD include diabetes, high blood pressure, and other conditions."},
		{"treatment for chronic kidney disease", "Treatments for CKD include lifestyle changes, medications, and in severe cases, dialysis or kidney transplant."},
		{"prevent chronic kidney disease", "Preventive measures for CKD include managing diabetes and high blood pressure, maintaining a healthy weight, and avoiding smoking."},
		{"diet for chronic kidney disease", "A kidney-friendly diet includes limiting sodium, potassium, and phosphorus, and eating high-quality protein."},
		{"who are you", "I am Visab Bot, your healthcare assistant."},
		{"thank you", "You are welcome!"},
		{"thanks", "You are welcome!"},
		{"bye", "Goodbye! Take care!"},
		{"what can you do", "I can provide information on chronic kidney disease based on the data I have."},
		{"what is your name", "My name is Visab Bot."},
		{"how are you", "I am just a bot, but I am here to help you!"},
	}
}
