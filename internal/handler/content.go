package handler

// Hero is the banner at the top of the landing page.
type Hero struct {
	Headline string
	Tagline  string
	CTALabel string
	CTAPath  string
}

// Service is one entry in the landing page's services grid.
type Service struct {
	Icon        string
	Title       string
	Description string
}

// Testimonial is one quote in the landing page's testimonials grid.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

var hero = Hero{
	Headline: "Understand your moods. Shape your days.",
	Tagline:  "MoodMingle helps you notice patterns in how you feel and build habits that lift you up.",
	CTALabel: "Start tracking",
	CTAPath:  "/protected",
}

var services = []Service{
	{Icon: "📓", Title: "Daily check-ins", Description: "Log how you feel in seconds with a quick mood scale and optional notes."},
	{Icon: "📈", Title: "Mood trends", Description: "See weekly and monthly charts that reveal what lifts you up and what drags you down."},
	{Icon: "🧘", Title: "Guided breathing", Description: "Short exercises to reset when the day gets heavy."},
	{Icon: "🔔", Title: "Gentle reminders", Description: "Nudges at the times you choose, never more than you ask for."},
	{Icon: "🤝", Title: "Share with care", Description: "Invite a friend or therapist to see the entries you pick."},
	{Icon: "🔒", Title: "Private by default", Description: "Your journal is yours. Nothing is shared unless you say so."},
}

var testimonials = []Testimonial{
	{Quote: "I finally noticed that my worst days follow nights of bad sleep. That changed everything.", Author: "Priya S.", Role: "Nurse"},
	{Quote: "Two minutes every evening. It has become the calmest part of my day.", Author: "Marcus T.", Role: "Software developer"},
	{Quote: "My therapist and I use the weekly view to start our sessions. It saves us so much time.", Author: "Elena R.", Role: "Graduate student"},
}
