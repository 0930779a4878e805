package chatbot

import "elevate-bot/web/types"

// KnowledgeEntry is a single static question/answer unit with keyword
// triggers. Entries are immutable after process start; matcher ties favor
// earlier entries, so the declared order below is load-bearing.
type KnowledgeEntry struct {
	Keywords []string
	Question string
	Answer   string
	Category string
}

var knowledgeBase = []KnowledgeEntry{
	{
		Keywords: []string{"what", "elevate", "about", "event", "conclave", "startup"},
		Question: "What is ELEVATE'26?",
		Answer:   "ELEVATE'26 is a Startup Conclave organized by the PSIT Startup & Incubation Foundation. It's a two-day event on February 24-25, 2026, at PSIT Kanpur, bringing together entrepreneurs, investors, and innovators for an exciting experience of learning, networking, and showcasing groundbreaking ideas.",
		Category: "general",
	},
	{
		Keywords: []string{"when", "date", "dates", "time", "schedule", "day"},
		Question: "When is ELEVATE'26?",
		Answer:   "ELEVATE'26 takes place on February 24-25, 2026 (Tuesday-Wednesday). The event spans two full days packed with guest lectures, networking sessions, and the Innovation Showcase Competition.",
		Category: "schedule",
	},
	{
		Keywords: []string{"where", "location", "venue", "place", "address", "psit", "kanpur"},
		Question: "Where is the event held?",
		Answer:   "ELEVATE'26 is held at PSIT Kanpur. The event utilizes three key venues:\n\n- Main Auditorium - For keynote speeches and guest lectures\n- Innovation Hub - For workshops and interactive sessions\n- Startup Showcase Arena - For the Innovation Showcase Competition",
		Category: "venue",
	},
	{
		Keywords: []string{"speaker", "speakers", "who", "keynote", "talk", "guest"},
		Question: "Who are the speakers?",
		Answer:   "ELEVATE'26 features distinguished speakers:\n\n- Ashish Kanaujia - Technology Innovation Consultant at iCreate (Govt of Gujarat TBI). He brings expertise in technology innovation and startup incubation.\n\n- Neha Malhotra - Founder & Managing Partner at MeritX Ventures, TiE Delhi. She offers deep insights into venture capital and startup ecosystem building.",
		Category: "speakers",
	},
	{
		Keywords: []string{"register", "registration", "sign", "join", "participate", "how", "enroll"},
		Question: "How do I register?",
		Answer:   "You can register for ELEVATE'26 through:\n\n- Scan the QR code on the official event poster\n- Visit: linktr.ee/srajanecellpsit2004\n- Contact directly: 88082 23952 or 76449 05477\n\nSpots are limited, so register early!",
		Category: "registration",
	},
	{
		Keywords: []string{"session", "sessions", "program", "activities", "agenda", "what", "happen"},
		Question: "What sessions are planned?",
		Answer:   "ELEVATE'26 features three main types of sessions:\n\n- Guest Lectures - Insightful talks from industry leaders and startup experts\n- Networking Sessions - Connect with fellow entrepreneurs, investors, and mentors\n- Innovation Showcase Competition - Present your startup idea and compete for recognition\n\nAll sessions are designed to inspire, educate, and foster collaboration.",
		Category: "sessions",
	},
	{
		Keywords: []string{"organizer", "organized", "who", "psit", "foundation", "incubation", "srajan"},
		Question: "Who is organizing the event?",
		Answer:   "ELEVATE'26 is organized by the PSIT Startup & Incubation Foundation at PSIT Kanpur. The foundation is dedicated to fostering innovation and entrepreneurship among students and aspiring entrepreneurs.",
		Category: "organizer",
	},
	{
		Keywords: []string{"auditorium", "main", "hall", "keynote", "lecture"},
		Question: "What happens at the Main Auditorium?",
		Answer:   "The Main Auditorium at PSIT hosts the keynote speeches and guest lectures during ELEVATE'26. This is where you'll hear from our distinguished speakers, Ashish Kanaujia and Neha Malhotra, sharing their insights on innovation and entrepreneurship.",
		Category: "venue",
	},
	{
		Keywords: []string{"innovation", "hub", "workshop", "interactive"},
		Question: "What is the Innovation Hub?",
		Answer:   "The Innovation Hub is one of the three main venues at ELEVATE'26. It hosts workshops and interactive sessions where participants can engage in hands-on activities, learn new skills, and collaborate with peers and mentors.",
		Category: "venue",
	},
	{
		Keywords: []string{"showcase", "arena", "competition", "startup", "pitch", "present"},
		Question: "What is the Startup Showcase Arena?",
		Answer:   "The Startup Showcase Arena is where the Innovation Showcase Competition takes place. Participants can present their startup ideas, get feedback from experts, and compete for recognition. It's a fantastic opportunity to get your idea noticed!",
		Category: "venue",
	},
	{
		Keywords: []string{"contact", "phone", "call", "number", "reach", "help"},
		Question: "How can I contact the organizers?",
		Answer:   "You can reach the ELEVATE'26 organizers at:\n\n- Phone: 88082 23952\n- Phone: 76449 05477\n- Online: linktr.ee/srajanecellpsit2004\n\nFeel free to reach out for any queries about the event!",
		Category: "contact",
	},
	{
		Keywords: []string{"ashish", "kanaujia", "icreate", "gujarat", "tbi"},
		Question: "Tell me about Ashish Kanaujia",
		Answer:   "Ashish Kanaujia is a Technology Innovation Consultant at iCreate, which is the Government of Gujarat's Technology Business Incubator (TBI). He specializes in helping startups leverage technology for innovation and growth. He'll be speaking at ELEVATE'26 on February 24-25, 2026.",
		Category: "speakers",
	},
	{
		Keywords: []string{"neha", "malhotra", "meritx", "ventures", "tie", "delhi"},
		Question: "Tell me about Neha Malhotra",
		Answer:   "Neha Malhotra is the Founder & Managing Partner at MeritX Ventures and is associated with TiE Delhi. She has extensive experience in venture capital and building the startup ecosystem. She'll be sharing her insights at ELEVATE'26.",
		Category: "speakers",
	},
	{
		Keywords: []string{"free", "cost", "fee", "price", "ticket", "paid", "charge"},
		Question: "Is the event free?",
		Answer:   "For details about event fees and tickets, please check the registration link at linktr.ee/srajanecellpsit2004 or contact the organizers at 88082 23952 or 76449 05477 for the latest information.",
		Category: "registration",
	},
	{
		Keywords: []string{"network", "networking", "connect", "meet", "people", "investor", "mentor"},
		Question: "Are there networking opportunities?",
		Answer:   "Absolutely! ELEVATE'26 includes dedicated Networking Sessions where you can connect with:\n\n- Fellow entrepreneurs and innovators\n- Industry experts and mentors\n- Potential investors\n- Like-minded students and professionals\n\nIt's a great opportunity to build valuable connections in the startup ecosystem!",
		Category: "sessions",
	},
	{
		Keywords: []string{"hello", "hi", "hey", "greetings", "good", "morning", "afternoon", "evening"},
		Question: "Greeting",
		Answer:   "Hello! Welcome to ELEVATE'26 - the Startup Conclave at PSIT Kanpur! I'm here to help you with any questions about the event happening on February 24-25, 2026. Feel free to ask about speakers, schedule, registration, or venues!",
		Category: "greeting",
	},
	{
		Keywords: []string{"thank", "thanks", "bye", "goodbye", "see", "later"},
		Question: "Farewell",
		Answer:   "Thank you for your interest in ELEVATE'26! We look forward to seeing you at PSIT Kanpur on February 24-25, 2026. If you have more questions later, feel free to come back anytime!",
		Category: "farewell",
	},
}

// KnowledgeBase returns the static knowledge base in its declared order.
func KnowledgeBase() []KnowledgeEntry {
	return knowledgeBase
}

// FAQs projects the knowledge base for public listing. Conversational
// greeting and farewell entries are excluded.
func FAQs() []types.FAQ {
	faqs := make([]types.FAQ, 0, len(knowledgeBase))
	for _, entry := range knowledgeBase {
		if entry.Category == "greeting" || entry.Category == "farewell" {
			continue
		}
		faqs = append(faqs, types.FAQ{
			Question: entry.Question,
			Answer:   entry.Answer,
			Category: entry.Category,
		})
	}
	return faqs
}
