package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/http/response"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
	"github.com/yungbote/blogbridge-backend/internal/services"
)

type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

type blogBody struct {
	Title   string  `json:"title" binding:"required,notblank,max=255"`
	Content *string `json:"content" binding:"required"`
}

func (b blogBody) input() services.BlogInput {
	return services.BlogInput{Title: b.Title, Content: *b.Content}
}

func (bh *BlogHandler) Create(c *gin.Context) {
	var req blogBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, response.BindError(err))
		return
	}
	b, err := bh.blogService.Create(requestDBC(c), currentUser(c).ID, req.input())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusCreated, messages.RecordCreated, b)
}

func (bh *BlogHandler) ListMine(c *gin.Context) {
	blogs, err := bh.blogService.ListMine(requestDBC(c), currentUser(c).ID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.RecordRetrieved, blogs)
}

type blogListQuery struct {
	Page   int    `form:"page,default=1" binding:"gte=1"`
	Limit  int    `form:"limit,default=10" binding:"gte=1,lte=100"`
	SortBy string `form:"sort_by,default=updated_at"`
	Order  string `form:"order,default=desc" binding:"oneof=asc desc"`
	Search string `form:"search"`
}

// ListFiltered is public and spans every user's blogs.
func (bh *BlogHandler) ListFiltered(c *gin.Context) {
	fields := response.FieldErrors{}
	for _, key := range []string{"page", "limit"} {
		if raw, ok := c.GetQuery(key); ok {
			if _, err := strconv.Atoi(strings.TrimSpace(raw)); err != nil {
				fields.Add(key, "value is not a valid integer")
			}
		}
	}
	if err := fields.Err(); err != nil {
		response.RespondError(c, err)
		return
	}

	var q blogListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, response.BindError(err))
		return
	}
	page, err := bh.blogService.ListFiltered(requestDBC(c), types.BlogListFilter{
		Page:       q.Page,
		Limit:      q.Limit,
		SortBy:     strings.TrimSpace(q.SortBy),
		Descending: q.Order == "desc",
		Search:     q.Search,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.RecordRetrieved, page)
}

func (bh *BlogHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	b, err := bh.blogService.Get(requestDBC(c), currentUser(c).ID, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.RecordRetrieved, b)
}

func (bh *BlogHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var req blogBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, response.BindError(err))
		return
	}
	b, err := bh.blogService.Update(requestDBC(c), currentUser(c).ID, id, req.input())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.RecordUpdated, b)
}

func (bh *BlogHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := bh.blogService.Delete(requestDBC(c), currentUser(c).ID, id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.RecordDeleted, nil)
}
