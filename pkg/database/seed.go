package database

import (
	"log"
	"peerlearn_backend/internal/model"

	"gorm.io/gorm"
)

// Seed inserts the default course catalog and reward catalog when the
// tables are empty. IDs are generated by the UUIDBase hook.
func Seed(db *gorm.DB) error {
	if err := seedCourses(db); err != nil {
		return err
	}
	return seedRewards(db)
}

func seedCourses(db *gorm.DB) error {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return nil
	}

	courses := []model.Course{
		{
			Title:       "Python for Beginners",
			Description: "Learn Python programming from scratch with hands-on projects and quizzes.",
			Thumbnail:   "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?w=400",
			CoinReward:  100,
			Modules: []model.CourseModule{
				{
					Title:    "Introduction to Python",
					VideoURL: "https://www.youtube.com/embed/kqtD5dpn9C8",
					Order:    1,
					Questions: []model.Question{
						{Question: "What is Python?", Options: []string{"A snake", "A programming language", "A game"}, CorrectAnswer: "A programming language", Order: 1},
						{Question: "Python is case-sensitive?", Options: []string{"True", "False"}, CorrectAnswer: "True", Order: 2},
					},
				},
				{
					Title:    "Variables and Data Types",
					VideoURL: "https://www.youtube.com/embed/LrOAl8vUFHY",
					Order:    2,
					Questions: []model.Question{
						{Question: "Which is a valid variable name?", Options: []string{"1var", "var_1", "var-1"}, CorrectAnswer: "var_1", Order: 1},
						{Question: "What type is \"Hello\"?", Options: []string{"int", "str", "bool"}, CorrectAnswer: "str", Order: 2},
					},
				},
			},
		},
		{
			Title:       "Web Development Fundamentals",
			Description: "Master HTML, CSS, and JavaScript to build modern websites.",
			Thumbnail:   "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400",
			CoinReward:  150,
			Modules: []model.CourseModule{
				{
					Title:    "HTML Basics",
					VideoURL: "https://www.youtube.com/embed/qz0aGYrrlhU",
					Order:    1,
					Questions: []model.Question{
						{Question: "What does HTML stand for?", Options: []string{"Hyper Text Markup Language", "High Tech Modern Language"}, CorrectAnswer: "Hyper Text Markup Language", Order: 1},
						{Question: "Which tag is for headings?", Options: []string{"<h1>", "<header>", "<head>"}, CorrectAnswer: "<h1>", Order: 2},
					},
				},
				{
					Title:    "CSS Styling",
					VideoURL: "https://www.youtube.com/embed/1PnVor36_40",
					Order:    2,
					Questions: []model.Question{
						{Question: "CSS stands for?", Options: []string{"Cascading Style Sheets", "Computer Style Sheets"}, CorrectAnswer: "Cascading Style Sheets", Order: 1},
						{Question: "How to select class?", Options: []string{".classname", "#classname", "classname"}, CorrectAnswer: ".classname", Order: 2},
					},
				},
				{
					Title:    "JavaScript Basics",
					VideoURL: "https://www.youtube.com/embed/W6NZfCO5SIk",
					Order:    3,
					Questions: []model.Question{
						{Question: "JavaScript is a?", Options: []string{"Scripting language", "Markup language"}, CorrectAnswer: "Scripting language", Order: 1},
						{Question: "How to declare variable?", Options: []string{"let x", "var x", "const x", "All of above"}, CorrectAnswer: "All of above", Order: 2},
					},
				},
			},
		},
		{
			Title:       "Data Science Essentials",
			Description: "Learn data analysis, visualization, and machine learning basics.",
			Thumbnail:   "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400",
			CoinReward:  200,
			Modules: []model.CourseModule{
				{
					Title:    "Introduction to Data Science",
					VideoURL: "https://www.youtube.com/embed/ua-CiDNNj30",
					Order:    1,
					Questions: []model.Question{
						{Question: "What is Data Science?", Options: []string{"Field of study", "Programming language"}, CorrectAnswer: "Field of study", Order: 1},
						{Question: "Python is used in data science?", Options: []string{"Yes", "No"}, CorrectAnswer: "Yes", Order: 2},
					},
				},
				{
					Title:    "Data Visualization",
					VideoURL: "https://www.youtube.com/embed/0P7QnIQDBJY",
					Order:    2,
					Questions: []model.Question{
						{Question: "Which library for visualization?", Options: []string{"Matplotlib", "NumPy", "Pandas"}, CorrectAnswer: "Matplotlib", Order: 1},
						{Question: "Visualization helps understanding?", Options: []string{"True", "False"}, CorrectAnswer: "True", Order: 2},
					},
				},
			},
		},
	}

	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d courses", len(courses))
	return nil
}

func seedRewards(db *gorm.DB) error {
	var count int64
	db.Model(&model.Reward{}).Count(&count)
	if count > 0 {
		return nil
	}

	rewards := []model.Reward{
		{Name: "Premium Notebook", Description: "High-quality ruled notebook for your studies", CoinCost: 100, Image: "https://images.unsplash.com/photo-1531346878377-a5be20888e57?w=300", Stock: 50},
		{Name: "Gel Pen Set", Description: "Set of 5 smooth-writing gel pens", CoinCost: 50, Image: "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?w=300", Stock: 100},
		{Name: "Study Planner", Description: "Weekly study planner to organize your learning", CoinCost: 80, Image: "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=300", Stock: 75},
		{Name: "Highlighter Set", Description: "6 vibrant colors for highlighting key concepts", CoinCost: 40, Image: "https://images.unsplash.com/photo-1614112644071-a129283e6ea1?w=300", Stock: 120},
		{Name: "Backpack", Description: "Durable backpack for carrying your study materials", CoinCost: 250, Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300", Stock: 30},
	}

	for i := range rewards {
		if err := db.Create(&rewards[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d rewards", len(rewards))
	return nil
}
