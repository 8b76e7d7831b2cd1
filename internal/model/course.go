package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Thumbnail   string         `gorm:"size:512" json:"thumbnail"`
	CoinReward  int            `gorm:"default:100" json:"coin_reward"`
	Modules     []CourseModule `gorm:"foreignKey:CourseID" json:"modules"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseModule is one video + quiz unit inside a course.
// swagger:model CourseModule
type CourseModule struct {
	UUIDBase
	CourseID  string     `gorm:"index;type:varchar(36)" json:"course_id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	VideoURL  string     `gorm:"size:512" json:"video_url"`
	Order     int        `gorm:"default:0" json:"order"`
	Questions []Question `gorm:"foreignKey:ModuleID" json:"questions"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

// swagger:model Question
type Question struct {
	UUIDBase
	ModuleID      string   `gorm:"index;type:varchar(36)" json:"module_id"`
	Question      string   `gorm:"type:text;not null" json:"question"`
	Options       []string `gorm:"serializer:json;type:json" json:"options"`
	CorrectAnswer string   `gorm:"size:512" json:"correct_answer"`
	Order         int      `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}
