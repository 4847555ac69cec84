package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/classcal/classcal-backend/internal/services"
  "github.com/classcal/classcal-backend/internal/types"
)

type ClassHandler struct {
  classService    services.ClassService
  syllabusService services.SyllabusService
}

func NewClassHandler(classService services.ClassService, syllabusService services.SyllabusService) *ClassHandler {
  return &ClassHandler{classService: classService, syllabusService: syllabusService}
}

func (ch *ClassHandler) List(c *gin.Context) {
  summaries, err := ch.classService.ListClasses(c.Request.Context(), nil)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "list_classes_failed", err)
    return
  }
  RespondOK(c, gin.H{"classes": summaries})
}

func (ch *ClassHandler) Create(c *gin.Context) {
  var class types.Class
  if err := c.ShouldBindJSON(&class); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  created, err := ch.classService.CreateClass(c.Request.Context(), nil, &class)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "create_class_failed", err)
    return
  }
  RespondOK(c, created)
}

func (ch *ClassHandler) Update(c *gin.Context) {
  classID, err := uuid.Parse(c.Param("class_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_class_id", errors.New("invalid class id"))
    return
  }
  var updated types.Class
  if err := c.ShouldBindJSON(&updated); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  if err := ch.classService.UpdateClass(c.Request.Context(), nil, classID, &updated); err != nil {
    if errors.Is(err, services.ErrClassNotFound) {
      RespondError(c, http.StatusNotFound, "class_not_found", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "update_class_failed", err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

func (ch *ClassHandler) Delete(c *gin.Context) {
  classID, err := uuid.Parse(c.Param("class_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_class_id", errors.New("invalid class id"))
    return
  }
  if err := ch.classService.DeleteClass(c.Request.Context(), nil, classID); err != nil {
    if errors.Is(err, services.ErrClassNotFound) {
      RespondError(c, http.StatusNotFound, "class_not_found", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "delete_class_failed", err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

// Parse runs syllabus extraction over raw text and returns a class draft for
// the client to review. Nothing is persisted here.
func (ch *ClassHandler) Parse(c *gin.Context) {
  var req struct {
    Text string `json:"text"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  draft, err := ch.syllabusService.ParseSyllabus(c.Request.Context(), req.Text)
  if err != nil {
    RespondError(c, http.StatusBadGateway, "syllabus_parse_failed", err)
    return
  }
  RespondOK(c, draft)
}
