package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/service/roi"
	"github.com/inshiratech/halal-compliance-demo/internal/util"
)

// roiDisplay 给演示页面直接展示用的格式化金额
type roiDisplay struct {
	BaselineTotal string `json:"baselineTotal"`
	BasicSavings  string `json:"basicSavings"`
	BasicNet      string `json:"basicNet"`
	CoreSavings   string `json:"coreSavings"`
	CoreNet       string `json:"coreNet"`
}

type roiResponse struct {
	roi.Result
	Display roiDisplay `json:"display"`
}

// CalculateROI ROI 估算
// POST /api/roi
func (h *Handler) CalculateROI(c *gin.Context) {
	var in roi.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := roi.Calculate(in, h.cfg.Pricing.BasicAnnualFee, h.cfg.Pricing.CoreAnnualFee)
	if err != nil {
		// 负数与越界都是客户端输入问题
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roiResponse{
		Result: result,
		Display: roiDisplay{
			BaselineTotal: util.FormatUSD(result.BaselineTotal),
			BasicSavings:  util.FormatUSD(result.Basic.Savings),
			BasicNet:      util.FormatUSD(result.Basic.NetAfterFee),
			CoreSavings:   util.FormatUSD(result.Core.Savings),
			CoreNet:       util.FormatUSD(result.Core.NetAfterFee),
		},
	})
}
