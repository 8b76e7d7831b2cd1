package repository

import (
	"peerlearn_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_modules.`order` ASC")
		}).
		Preload("Modules.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.`order` ASC")
		})
}

func (r *CourseRepository) FindAll(limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.preload(r.DB).Limit(limit).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.preload(r.DB).Where("id = ?", id).First(&course).Error
	return &course, err
}
