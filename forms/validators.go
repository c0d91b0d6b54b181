package forms

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var MongoID validator.Func = func(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func InitValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("mongoID", MongoID)
		v.RegisterValidation("courseLevel", CourseLevel)
		v.RegisterValidation("courseSort", CourseSort)
		v.RegisterValidation("enrollmentStatus", EnrollmentStatus)
		v.RegisterValidation("theme", Theme)
		v.RegisterValidation("feedbackType", FeedbackType)
		v.RegisterValidation("feedbackStatus", FeedbackStatus)
	}
}
