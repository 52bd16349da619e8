// Package content is the static, read-only content the site renders.
package content

import "strings"

type Profile struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Email    string   `json:"email"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

type Experience struct {
	Year    string `json:"year"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Blurb   string `json:"blurb"`
}

type Project struct {
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Link  string   `json:"link"`
	Tags  []string `json:"tags"`
}

type Testimonial struct {
	Quote string `json:"quote"`
	By    string `json:"by"`
}

type Hero struct {
	Hi       string `json:"hi"`
	Subtitle string `json:"subtitle"`
	Download string `json:"download"`
	Contact  string `json:"contact"`
	CVPath   string `json:"cvPath"`
}

type UI struct {
	Nav     map[string]string `json:"nav"`
	Hero    Hero              `json:"hero"`
	About   map[string]string `json:"about"`
	Contact map[string]string `json:"contact"`
	Footer  map[string]string `json:"footer"`
	Palette map[string]string `json:"palette"`
}

// Collection is everything served by GET /api/content.
type Collection struct {
	Me           Profile       `json:"me"`
	Experience   []Experience  `json:"experience"`
	Projects     []Project     `json:"projects"`
	Portfolio    []Project     `json:"portfolio"`
	Testimonials []Testimonial `json:"testimonials"`
	Marquee      []string      `json:"marqueeSkills"`
	UI           UI            `json:"ui"`
}

var (
	Me = Profile{
		Name:     "Connor Hogan",
		Title:    "Software Engineer",
		Email:    "628cjh@gmail.com",
		Location: "Huntsville, AL",
		Skills:   []string{"Go", "Python", "C++", "C", "HTML", "JavaScript", "CSS", "TypeScript", "SCSS", "Angular", "Chart.js", "D3", "A11y"},
	}

	Experiences = []Experience{
		{
			Year:    "October 2024 — Present",
			Role:    "Software Engineer",
			Company: "NASA – Marshall Space Flight Center",
			Blurb:   "Maintain communication networking systems on the ISS program.",
		},
		{
			Year:    "May 2023 — July 2023",
			Role:    "Software Engineer",
			Company: "Lockheed Martin – Huntsville, AL",
			Blurb:   "Designed, developed, and integrated THAAD Fire Control Software. Updated and maintained FPGA firmware.",
		},
		{
			Year:    "December 2021 — May 2023",
			Role:    "Software Engineer",
			Company: "Northrop Grumman / Insight Global – Huntsville, AL",
			Blurb: `Developed and modified algorithms and support tools in C/C++, Go, Python, Ada, and MATLAB in a secure environment.
	Planned and executed team projects, created work packages, prototypes, and customer demos, and analyzed algorithm
	performance, subsystems, and interfaces.`,
		},
		{
			Year:    "December 2019 — December 2021",
			Role:    "Mission Systems Engineer",
			Company: "US Air Force – Offutt AFB, NE",
			Blurb: `Performed aircrew duties aboard the RC-135 reconnaissance platform. Operated, maintained, repaired, and tested
	airborne communications, electro-optical sensors, radar, computer, EP and EW systems.`,
		},
	}

	Projects = []Project{
		{"Auto Query", "Queries YouTube, Reddit, and Twitch videos, displaying results on a locally hosted webpage frontend.", "https://github.com/QuiteLiterallyConnor/autoQuery", []string{"Go", "HTML", "JavaScript"}},
		{"Bluetooth Manager", "Provides functionality to control and scan Bluetooth devices using Golang.", "https://github.com/QuiteLiterallyConnor/BluetoothManager", []string{"Go"}},
		{"Dart Monkey Project", "Project to create a real-life Dart Monkey from Bloons Tower Defense.", "https://github.com/QuiteLiterallyConnor/DartMonkeyProject", []string{"C++", "Go", "Python", "HTML", "CSS", "JavaScript"}},
		{"Resume Website", "Personal site with a Go backend and tasteful motion.", "https://github.com/QuiteLiterallyConnor/ResumeWebsite", []string{"Go", "HTML", "TypeScript", "SCSS"}},
		{"Backgrounds", "A collection of animated canvas backgrounds.", "#", []string{"Go"}},
	}

	Portfolio = []Project{
		{Title: "Terminal Mail", Desc: `A terminal-based email client built in Go with fuzzyfinder capabilities
	using a TUI framework and go-imap.`, Tags: []string{"Go", "TUI"}},
		{Title: "Terminal Music", Desc: `A terminal-based music streaming application built in Go, leveraging yt-dlp
	and mpv for YouTube Music playback directly from the command line.`, Tags: []string{"Go", "TUI"}},
		{Title: "Game Recommender", Desc: `A machine learning web application that uses TF-IDF vectorization and cosine
	similarity to recommend games based on content analysis.`, Tags: []string{"Python", "ML"}},
	}

	// No testimonials collected yet.
	Testimonials = []Testimonial{}

	Copy = UI{
		Nav: map[string]string{
			"about":        "About",
			"experience":   "Experience",
			"projects":     "Projects",
			"testimonials": "Testimonials",
			"backToTop":    "Back to top",
		},
		Hero: Hero{
			Hi:       "Hi, I’m",
			Subtitle: "I build robust full stack services for crisp web experiences.",
			Download: "Download CV",
			Contact:  "Contact",
			CVPath:   "public/connor-hogan-resume-oct-2024.pdf",
		},
		About: map[string]string{
			"heading": "About Me",
			"lead":    "I’m a software engineer specializing in models & simulation and web development.",
		},
		Contact: map[string]string{
			"heading": "Contact",
			"lead":    "Let’s build something great together.",
			"submit":  "Send",
		},
		Footer: map[string]string{
			"rights":          "All rights reserved.",
			"copyrightHolder": "Connor Hogan",
		},
		Palette: map[string]string{
			"placeholder": "Type a command or search…",
			"hint":        "Press Esc to close • ↑↓ to navigate • Enter to run",
		},
	}
)

// Marquee repeats the skill list to fill a scrolling ticker.
func Marquee(times int) []string {
	out := make([]string, 0, times*len(Me.Skills))
	for i := 0; i < times; i++ {
		out = append(out, Me.Skills...)
	}
	return out
}

// All returns the full collection.
func All() Collection {
	return Collection{
		Me:           Me,
		Experience:   Experiences,
		Projects:     Projects,
		Portfolio:    Portfolio,
		Testimonials: Testimonials,
		Marquee:      Marquee(12),
		UI:           Copy,
	}
}

// ResumeURL is the public URL path of the CV: the "public/" build prefix
// is served from the root.
func ResumeURL() string {
	p := Copy.Hero.CVPath
	if strings.HasPrefix(p, "public/") {
		return "/" + strings.TrimPrefix(p, "public/")
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

// ResumeFilename is the download name of the CV.
func ResumeFilename() string {
	p := Copy.Hero.CVPath
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
