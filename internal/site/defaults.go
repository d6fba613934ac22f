package site

import (
	"strconv"

	"github.com/dileepkakara/portfolio/internal/models"
)

// EducationItem is one row of the education timeline.
type EducationItem struct {
	Icon        string
	Degree      string
	Institution string
	Duration    string
	Grade       string
}

type Social struct {
	Name    string
	Caption string
	Icon    string
	URL     string
}

// Profile is the static part of the page that is not managed through the API.
type Profile struct {
	Name        string
	Professions []string
	Intro       string
	HeroImage   string
	Photo       string
	CVLink      string
	HeroSkills  []models.Skill
	Education   []EducationItem
	Email       string
	Phone       string
	Location    string
	Socials     []Social
}

func DefaultProfile() Profile {
	return Profile{
		Name:        "Dileep Kakara",
		Professions: []string{"CSE Undergraduate", "Web Developer", "Programmer"},
		Intro: "I'm a passionate computer science student with skills in web development and programming. " +
			"Currently pursuing my B-Tech at Vignan's Engineering College.",
		HeroImage: "https://images.unsplash.com/photo-1571171637578-41bc2dd41cd2?ixlib=rb-4.0.3&auto=format&fit=crop&w=1470&q=80",
		Photo:     "https://res.cloudinary.com/dpzgo1w9j/image/upload/v1740667299/1740230734075_jbkbcn.jpg",
		CVLink:    "https://drive.google.com/file/d/1ragQaArB1p3j89GW3oqwuCVv9izXOZWI/view?usp=drivesdk",
		HeroSkills: []models.Skill{
			{Name: "HTML5", Icon: "fab fa-html5"},
			{Name: "CSS3", Icon: "fab fa-css3-alt"},
			{Name: "JavaScript", Icon: "fab fa-js"},
			{Name: "React", Icon: "fab fa-react"},
		},
		Education: []EducationItem{
			{Icon: "fas fa-graduation-cap", Degree: "B-Tech in Computer Science Engineering", Institution: "Vignan's Engineering College", Duration: "2022 - 2026", Grade: "CGPA: 7.56"},
			{Icon: "fas fa-certificate", Degree: "Diploma", Institution: "Gonna Engineering College | State Board of Technical Education", Duration: "2020 - 2022", Grade: "CGPA: 7.28"},
			{Icon: "fas fa-school", Degree: "School", Institution: "SBVN School", Duration: "2019", Grade: "CGPA: 8.2"},
		},
		Email:    "dileepkakara@gmail.com",
		Phone:    "+91 9182681959",
		Location: "Visakhapatnam, India",
		Socials: []Social{
			{Name: "LinkedIn", Caption: "Connect professionally", Icon: "fab fa-linkedin-in", URL: "https://www.linkedin.com/in/dileep-kakara-20a45b294"},
			{Name: "GitHub", Caption: "View my projects", Icon: "fab fa-github", URL: "https://github.com/kakaradileep"},
			{Name: "Instagram", Caption: "Personal life", Icon: "fab fa-instagram", URL: "https://www.instagram.com/dileep._kakara"},
		},
	}
}

func DefaultSkills() []models.Skill {
	skills := []models.Skill{
		{Name: "HTML5", Icon: "fab fa-html5"},
		{Name: "CSS3", Icon: "fab fa-css3-alt"},
		{Name: "JavaScript", Icon: "fab fa-js"},
		{Name: "React", Icon: "fab fa-react"},
		{Name: "Node.js", Icon: "fab fa-node-js"},
		{Name: "Express.js", Icon: "fas fa-code"},
		{Name: "Python", Icon: "fab fa-python"},
		{Name: "MongoDB", Icon: "fas fa-database"},
		{Name: "MySQL", Icon: "fas fa-database"},
		{Name: "Git", Icon: "fab fa-git-alt"},
		{Name: "GitHub", Icon: "fab fa-github"},
		{Name: "VS Code", Icon: "fas fa-code"},
	}
	for i := range skills {
		skills[i].ID = strconv.Itoa(i + 1)
	}
	return skills
}

func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Title:       "Restaurant Management System",
			Description: "MERN Stack platform with role-based access, order tracking, and QR table allocation.",
			Image:       "https://res.cloudinary.com/dpzgo1w9j/image/upload/v1769007885/IMG-20260121-WA0002_pg8cv0.jpg",
			Tags:        []string{"Reactjs", "Nodejs", "Express.js", "MongoDB", "JWT"},
			LiveLink:    "https://restaurant-frontend-puce.vercel.app/",
			GithubLink:  "https://github.com/Dileepkakara/restaurant-frontend",
		},
		{
			ID:    "2",
			Title: "Alumni Interaction Platform",
			Description: "Built a scalable alumni-student portal with job postings, mentorship, and event management. " +
				"Developed using React, Node.js, MySQL with JWT authentication and Firebase integration, supporting 50+ concurrent users.",
			Image:      "https://res.cloudinary.com/dpzgo1w9j/image/upload/v1744689363/IMG-20250415-WA0001_1_zidwbu.jpg",
			Tags:       []string{"React", "Node.js", "express.js", "MySQL", "Firebase"},
			LiveLink:   "https://aluminifrontend-two.vercel.app/",
			GithubLink: "https://github.com/Dileepkakara/aluminifrontend",
		},
		{
			ID:    "3",
			Title: "LLM Chatbot",
			Description: "Built a real-time LLM chatbot with backend-focused architecture using Node.js, Express, and Socket.io. " +
				"Integrated multiple LLM APIs with React frontend, MongoDB for persistence, and Firebase authentication.",
			Image:      "https://res.cloudinary.com/dpzgo1w9j/image/upload/v1744689363/IMG-20250415-WA0001_1_zidwbu.jpg",
			Tags:       []string{"React", "Node.js", "Express.js", "MongoDB", "Socket.io"},
			LiveLink:   "https://dileepkakara.github.io/portfolio/",
			GithubLink: "https://github.com/Dileepkakara/portfolio",
		},
	}
}

// DefaultAbout is shown until a profile has been saved through the admin panel.
func DefaultAbout() models.About {
	p := DefaultProfile()
	return models.About{
		DateOfBirth:  "20/09/2003",
		Phone:        p.Phone,
		Location:     p.Location,
		Education:    "B-Tech in Computer Science Engineering",
		ProfilePhoto: p.Photo,
		CVLink:       p.CVLink,
	}
}
