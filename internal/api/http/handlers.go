package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/api/middleware"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/storage"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/tracing"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	store   storage.Store
	flash   *FlashStore
	tracer  *tracing.Tracer
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(
	store storage.Store,
	flash *FlashStore,
	tracer *tracing.Tracer,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		store:   store,
		flash:   flash,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Register mounts every catalog route on r, plus the fallback for
// unmatched paths.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/catalog", h.Catalog)
	r.GET("/add_course", h.AddCourseForm)
	r.POST("/add_course", h.AddCourse)
	r.GET("/course/:code", h.CourseDetails)
	r.GET("/manual-trace", h.ManualTrace)
	r.GET("/auto-instrumented", h.AutoInstrumented)
	r.GET("/health", h.Health)
	r.NoRoute(h.NotFound)
}

// Index renders the landing page
func (h *Handlers) Index(c *gin.Context) {
	h.log(c).Info("Accessed home page")
	c.HTML(http.StatusOK, tmplIndex, page{
		Title:   "Course Catalog",
		Flashes: h.flash.Consume(c),
	})
}

// Catalog lists every course
func (h *Handlers) Catalog(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "course_catalog_span")
	defer span.End()

	courses, err := h.store.Load(ctx)
	if err != nil {
		h.fail(c, span, err)
		return
	}

	span.SetAttributes(attribute.Int("total_courses", len(courses)))
	h.metrics.SetCoursesTotal(len(courses))
	h.log(c).Info(fmt.Sprintf("Accessed course catalog. Total courses: %d.", len(courses)),
		zap.Int("total_courses", len(courses)))

	c.HTML(http.StatusOK, tmplCatalog, page{
		Title:   "Course Catalog",
		Flashes: h.flash.Consume(c),
		Courses: rows(courses),
	})
}

// AddCourseForm renders a blank submission form
func (h *Handlers) AddCourseForm(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "add_course_span")
	defer span.End()

	h.log(c).Info("Accessed the add course page")
	c.HTML(http.StatusOK, tmplAdd, page{
		Title:   "Add Course",
		Flashes: h.flash.Consume(c),
	})
}

// AddCourse validates a submission and stores it
func (h *Handlers) AddCourse(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "add_course_span")
	defer span.End()

	course, err := catalog.Normalize(c.PostForm)
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		msg := verr.Error()
		h.log(c).Error(msg, zap.Strings("missing", verr.Missing))
		span.SetStatus(codes.Error, msg)
		h.metrics.RecordValidationFailure(verr.Missing)
		h.redirect(c, "/add_course", FlashError, msg)
		return
	}
	if err != nil {
		h.fail(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("course.code", course.Code))
	if err := h.store.Save(ctx, course); err != nil {
		h.fail(c, span, err)
		return
	}

	h.metrics.IncCoursesAdded()
	h.log(c).Info(fmt.Sprintf("Added new course: %s", course.Code),
		zap.String("code", course.Code),
		zap.String("name", course.Name),
		zap.String("instructor", course.Instructor),
		zap.String("semester", course.Semester),
	)
	h.redirect(c, "/catalog", FlashSuccess, fmt.Sprintf("Course '%s' added successfully!", course.Name))
}

// CourseDetails shows the first course matching the code in the path
func (h *Handlers) CourseDetails(c *gin.Context) {
	code := c.Param("code")

	ctx, span := h.tracer.Start(c.Request.Context(), "course_details_span")
	defer span.End()
	span.SetAttributes(attribute.String("course.code", code))

	courses, err := h.store.Load(ctx)
	if err != nil {
		h.fail(c, span, err)
		return
	}

	course, ok := catalog.Find(courses, code)
	if !ok {
		msg := fmt.Sprintf("No course with code '%s' found", code)
		h.log(c).Error(msg)
		span.SetStatus(codes.Error, msg)
		h.metrics.IncLookupMisses()
		h.redirect(c, "/catalog", FlashError, msg)
		return
	}

	h.log(c).Info(fmt.Sprintf("Accessed course '%s' with code '%s'", course.Name, code))
	c.HTML(http.StatusOK, tmplDetails, page{
		Title:   course.Name,
		Flashes: h.flash.Consume(c),
		Course:  row(course),
	})
}

// ManualTrace records a span without relying on middleware
func (h *Handlers) ManualTrace(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "manual-span", trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	span.SetAttributes(
		attribute.String(tracing.AttrHTTPMethod, c.Request.Method),
		attribute.String(tracing.AttrHTTPURL, tracing.FullURL(c.Request)),
	)
	span.AddEvent("Processing request")

	h.log(c).Info("Manual trace executed")
	c.String(http.StatusOK, "Manual trace recorded")
}

// AutoInstrumented is traced by the middleware only
func (h *Handlers) AutoInstrumented(c *gin.Context) {
	h.log(c).Info("Accessed auto-instrumented route")
	c.String(http.StatusOK, "This route is auto-instrumented")
}

// Health reports liveness and request totals
func (h *Handlers) Health(c *gin.Context) {
	h.log(c).Debug("Health check")
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"metrics": h.metrics.Snapshot(),
	})
}

// NotFound answers paths no route matched
func (h *Handlers) NotFound(c *gin.Context) {
	h.log(c).Warn(fmt.Sprintf("No route for %s %s", c.Request.Method, c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
	c.String(http.StatusNotFound, "Not Found")
}

// log returns the handler logger tagged with request and trace ids.
func (h *Handlers) log(c *gin.Context) *zap.Logger {
	return h.logger.With(
		zap.String("request_id", middleware.GetRequestID(c).String()),
		zap.String("trace_id", tracing.GetTraceID(c.Request.Context())),
	)
}

func (h *Handlers) redirect(c *gin.Context, location, category, message string) {
	if err := h.flash.Add(c, category, message); err != nil {
		h.log(c).Warn("Failed to set flash notice", zap.Error(err))
	}
	c.Redirect(http.StatusFound, location)
}

// fail marks the handler span and hands err to the recovery middleware.
func (h *Handlers) fail(c *gin.Context, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	_ = c.Error(err)
	c.Abort()
}
