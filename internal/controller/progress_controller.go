package controller

import (
	"io"
	"strconv"

	"github.com/AdityaANS/dsa-progress-tracker/internal/service"
	"github.com/AdityaANS/dsa-progress-tracker/internal/util"
	"github.com/gin-gonic/gin"
)

// maxImageBytes caps a solve image read into memory before upload.
const maxImageBytes = 8 << 20

type ProgressController struct {
	Sync *service.SyncService
}

func NewProgressController(sync *service.SyncService) *ProgressController {
	return &ProgressController{Sync: sync}
}

type AddTopicRequest struct {
	Name   string `json:"name"`
	Target int    `json:"target"`
}

type UpdateTargetRequest struct {
	Target int `json:"target"`
}

// GetProgress godoc
// @Summary Current progress snapshot
// @Description Topic list with recomputed aggregates and streak state
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response{data=service.ProgressSnapshot}
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	util.Success(ctx, c.Sync.Snapshot())
}

// AddTopic godoc
// @Summary Add a practice topic
// @Description Appends a topic with a zero solved count. An empty name
// @Description or non-positive target changes nothing.
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} util.Response{data=service.ProgressSnapshot}
// @Failure 400 {object} util.Response
// @Router /api/topics [post]
func (c *ProgressController) AddTopic(ctx *gin.Context) {
	var req AddTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.Sync.AddTopic(req.Name, req.Target)
	util.Success(ctx, c.Sync.Snapshot())
}

// UpdateTarget godoc
// @Summary Update a topic's target
// @Description Sets the target (clamped to at least 1) without
// @Description touching the solved count.
// @Tags progress
// @Accept json
// @Produce json
// @Param index path int true "Topic index"
// @Success 200 {object} util.Response{data=service.ProgressSnapshot}
// @Failure 400 {object} util.Response
// @Router /api/topics/{index}/target [patch]
func (c *ProgressController) UpdateTarget(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "index must be an integer")
		return
	}

	var req UpdateTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.Sync.UpdateTarget(index, req.Target)
	util.Success(ctx, c.Sync.Snapshot())
}

// RecordSolve godoc
// @Summary Record one solved problem
// @Description Increments the topic's solved count unless the target
// @Description is already reached. Accepts an optional image that is
// @Description attached to the remote record when signed in.
// @Tags progress
// @Accept multipart/form-data
// @Produce json
// @Param index path int true "Topic index"
// @Param problemName formData string false "Problem name"
// @Param link formData string false "Problem link"
// @Param image formData file false "Solution screenshot"
// @Success 200 {object} util.Response{data=service.ProgressSnapshot}
// @Failure 400 {object} util.Response
// @Router /api/topics/{index}/solves [post]
func (c *ProgressController) RecordSolve(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "index must be an integer")
		return
	}

	problemName := ctx.PostForm("problemName")
	link := ctx.PostForm("link")

	var image *service.SolveImage
	if header, err := ctx.FormFile("image"); err == nil {
		if header.Size > maxImageBytes {
			util.BadRequest(ctx, "image too large")
			return
		}
		file, err := header.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		image = &service.SolveImage{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	c.Sync.RecordSolve(index, problemName, link, image)
	util.Success(ctx, c.Sync.Snapshot())
}
