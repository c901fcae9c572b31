package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
	"github.com/inshiratech/halal-compliance-demo/internal/service/intake"
	"github.com/inshiratech/halal-compliance-demo/internal/store"
)

// 未上传文件时的占位文件名，与原演示一致
const placeholderFileName = "(demo) supplier_certificate.pdf"

// 上传文件大小上限 10MB，演示用途足够
const maxUploadBytes = 10 << 20

type extractRequest struct {
	FileName string `json:"fileName"`
}

type extractResponse struct {
	FileName string            `json:"fileName"`
	Guess    model.IntakeGuess `json:"guess"`
}

// ExtractIntake 模拟 OCR 提取
// POST /api/intake/extract
// 支持 multipart 文件上传（文件存入 data/uploads）或 JSON 提供文件名
func (h *Handler) ExtractIntake(c *gin.Context) {
	names, err := h.store.SupplierNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fileName := ""
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileName, err = h.saveUpload(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		var req extractRequest
		// 空请求体也允许：返回占位提取结果
		_ = c.ShouldBindJSON(&req)
		fileName = strings.TrimSpace(req.FileName)
	}

	var guess model.IntakeGuess
	if fileName == "" {
		guess = intake.DefaultGuess(names, h.now())
	} else {
		guess = intake.GuessFromFilename(fileName, names, h.now())
	}

	c.JSON(http.StatusOK, extractResponse{
		FileName: fileName,
		Guess:    guess,
	})
}

// saveUpload 保存上传文件到 data/uploads，返回原始文件名
// 磁盘文件名加 uuid 前缀避免覆盖
func (h *Handler) saveUpload(c *gin.Context) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("missing upload field \"file\"")
	}
	if fh.Size > maxUploadBytes {
		return "", fmt.Errorf("upload too large (max %d bytes)", maxUploadBytes)
	}

	base := filepath.Base(fh.Filename)
	dst := filepath.Join(h.dataDir, "uploads", uuid.New().String()[:8]+"_"+base)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload failed: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("store upload failed: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("store upload failed: %w", err)
	}
	return base, nil
}

type createSubmissionRequest struct {
	Supplier   string `json:"supplier"`
	Country    string `json:"country"`
	Material   string `json:"material"`
	CertBody   string `json:"certBody"`
	CertNo     string `json:"certNo"`
	ExpiryDate string `json:"expiryDate"`
	FileName   string `json:"fileName"`
	Note       string `json:"note"`
}

// CreateSubmission 供应商确认提取结果并提交审批
// POST /api/intake/submissions
func (h *Handler) CreateSubmission(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Supplier) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier is required"})
		return
	}
	if _, err := model.ParseDate(req.ExpiryDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expiry Date must be in YYYY-MM-DD format."})
		return
	}

	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		fileName = placeholderFileName
	}

	sub := model.Submission{
		ID:          uuid.New().String(),
		SubmittedAt: timestamp(h.now()),
		Supplier:    strings.TrimSpace(req.Supplier),
		Country:     strings.TrimSpace(req.Country),
		Material:    strings.TrimSpace(req.Material),
		CertBody:    strings.TrimSpace(req.CertBody),
		CertNo:      strings.TrimSpace(req.CertNo),
		ExpiryDate:  req.ExpiryDate,
		FileName:    fileName,
		Note:        req.Note,
		State:       model.SubmissionPending,
	}

	if err := h.store.InsertSubmission(sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ListSubmissions 待审批提交列表，最新的在前
// GET /api/intake/submissions
func (h *Handler) ListSubmissions(c *gin.Context) {
	subs, err := h.store.ListSubmissions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if subs == nil {
		subs = []model.Submission{}
	}
	c.JSON(http.StatusOK, gin.H{"items": subs, "total": len(subs)})
}

// ApproveSubmission 审批通过：入库为正式证书并记录日志
// POST /api/intake/submissions/:id/approve
func (h *Handler) ApproveSubmission(c *gin.Context) {
	sub, err := h.store.GetSubmission(c.Param("id"))
	if errors.Is(err, store.ErrSubmissionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	certID, err := h.store.NextCertificateID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := h.now()
	cert := model.Certificate{
		ID:         certID,
		Supplier:   sub.Supplier,
		Material:   sub.Material,
		CertBody:   sub.CertBody,
		CertNo:     sub.CertNo,
		Country:    sub.Country,
		IssueDate:  now.Format(model.DateLayout),
		ExpiryDate: sub.ExpiryDate,
		FileName:   sub.FileName,
	}
	if err := h.store.InsertCertificate(cert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry := model.ApprovalEntry{
		LoggedAt:      timestamp(now),
		Action:        model.ActionApproved,
		Supplier:      sub.Supplier,
		Material:      sub.Material,
		CertificateID: certID,
		Note:          fmt.Sprintf("Approved from supplier intake. CertNo=%s", sub.CertNo),
	}
	if err := h.store.AppendApproval(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteSubmission(sub.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 证书集合变了，供应商视图缓存失效
	h.compliance.Invalidate()

	c.JSON(http.StatusOK, gin.H{"certificate": cert})
}

// RejectSubmission 审批拒绝：仅记录日志并出队
// POST /api/intake/submissions/:id/reject
func (h *Handler) RejectSubmission(c *gin.Context) {
	sub, err := h.store.GetSubmission(c.Param("id"))
	if errors.Is(err, store.ErrSubmissionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry := model.ApprovalEntry{
		LoggedAt:      timestamp(h.now()),
		Action:        model.ActionRejected,
		Supplier:      sub.Supplier,
		Material:      sub.Material,
		CertificateID: "(pending)",
		Note:          "Rejected (demo)",
	}
	if err := h.store.AppendApproval(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteSubmission(sub.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rejected": sub.ID})
}
