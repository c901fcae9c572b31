// Package roi 实现演示用的 ROI 估算器
// 把客户的时间成本与事故成本换算成年度节省与回本周期，口径刻意保守
package roi

import (
	"errors"
	"fmt"
)

// 保守假设：Basic 小幅减少行政时间，Core 大幅减少催办与审计准备
const (
	basicTimeReduction    = 0.20 // Basic 行政时间减少 20%
	coreChaseReduction    = 0.70 // Core 催办时间减少 70%
	coreReworkReduction   = 0.45 // Core 返工时间减少 45%
	coreAuditReduction    = 0.50 // Core 审计准备时间减少 50%
	coreIncidentReduction = 0.20 // Core 事故减少 20%
)

// 输入边界，对应演示页面控件的范围
const (
	maxSuppliers        = 2000
	maxCertificates     = 20000
	maxHourlyCost       = 250
	maxWeeklyHours      = 60
	maxMonthlyHours     = 120
	maxIncidentsPerYear = 24
	maxIncidentCost     = 500000
)

// ErrNegativeInput 输入不允许为负数
var ErrNegativeInput = errors.New("roi inputs must be non-negative")

// Input ROI 估算输入
type Input struct {
	Suppliers    int     `json:"suppliers"`
	Certificates int     `json:"certificates"`
	HourlyCost   float64 `json:"hourlyCost"` // 内部人力时薪（美元）

	ChaseHoursPerWeek  float64 `json:"chaseHoursPerWeek"`  // 每周催办供应商时长
	ReworkHoursPerWeek float64 `json:"reworkHoursPerWeek"` // 每周返工/重提交时长
	AuditHoursPerMonth float64 `json:"auditHoursPerMonth"` // 每月审计准备时长

	DelayIncidentsPerYear      int     `json:"delayIncidentsPerYear"`
	AvgDelayCost               float64 `json:"avgDelayCost"`
	ComplianceIncidentsPerYear int     `json:"complianceIncidentsPerYear"`
	AvgComplianceCost          float64 `json:"avgComplianceCost"`
}

// PlanResult 单个套餐的估算结果
type PlanResult struct {
	AnnualFee     float64  `json:"annualFee"`
	Savings       float64  `json:"savings"`
	NetAfterFee   float64  `json:"netAfterFee"`
	PaybackMonths *float64 `json:"paybackMonths"` // 节省不为正时为 null（N/A）
}

// Result ROI 估算结果
type Result struct {
	AnnualTimeCost     float64    `json:"annualTimeCost"`
	AnnualIncidentCost float64    `json:"annualIncidentCost"`
	BaselineTotal      float64    `json:"baselineTotal"`
	Basic              PlanResult `json:"basic"`
	Core               PlanResult `json:"core"`
}

// Validate 校验输入边界
func (in Input) Validate() error {
	if in.Suppliers < 0 || in.Certificates < 0 || in.HourlyCost < 0 ||
		in.ChaseHoursPerWeek < 0 || in.ReworkHoursPerWeek < 0 || in.AuditHoursPerMonth < 0 ||
		in.DelayIncidentsPerYear < 0 || in.AvgDelayCost < 0 ||
		in.ComplianceIncidentsPerYear < 0 || in.AvgComplianceCost < 0 {
		return ErrNegativeInput
	}
	if in.Suppliers > maxSuppliers {
		return fmt.Errorf("suppliers must be at most %d", maxSuppliers)
	}
	if in.Certificates > maxCertificates {
		return fmt.Errorf("certificates must be at most %d", maxCertificates)
	}
	if in.HourlyCost > maxHourlyCost {
		return fmt.Errorf("hourly cost must be at most %d", maxHourlyCost)
	}
	if in.ChaseHoursPerWeek > maxWeeklyHours || in.ReworkHoursPerWeek > maxWeeklyHours {
		return fmt.Errorf("weekly hours must be at most %d", maxWeeklyHours)
	}
	if in.AuditHoursPerMonth > maxMonthlyHours {
		return fmt.Errorf("monthly audit hours must be at most %d", maxMonthlyHours)
	}
	if in.DelayIncidentsPerYear > maxIncidentsPerYear || in.ComplianceIncidentsPerYear > maxIncidentsPerYear {
		return fmt.Errorf("incidents per year must be at most %d", maxIncidentsPerYear)
	}
	if in.AvgDelayCost > maxIncidentCost || in.AvgComplianceCost > maxIncidentCost {
		return fmt.Errorf("incident cost must be at most %d", maxIncidentCost)
	}
	return nil
}

// Calculate 计算 ROI 估算
// basicFee / coreFee 为套餐年费（来自配置）
func Calculate(in Input, basicFee, coreFee float64) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	annualChaseCost := in.ChaseHoursPerWeek * 52 * in.HourlyCost
	annualReworkCost := in.ReworkHoursPerWeek * 52 * in.HourlyCost
	annualAuditCost := in.AuditHoursPerMonth * 12 * in.HourlyCost
	annualTimeCost := annualChaseCost + annualReworkCost + annualAuditCost

	annualIncidentCost := float64(in.DelayIncidentsPerYear)*in.AvgDelayCost +
		float64(in.ComplianceIncidentsPerYear)*in.AvgComplianceCost
	baselineTotal := annualTimeCost + annualIncidentCost

	basicTotal := annualTimeCost*(1-basicTimeReduction) + annualIncidentCost

	coreTimeCost := annualChaseCost*(1-coreChaseReduction) +
		annualReworkCost*(1-coreReworkReduction) +
		annualAuditCost*(1-coreAuditReduction)
	coreTotal := coreTimeCost + annualIncidentCost*(1-coreIncidentReduction)

	return Result{
		AnnualTimeCost:     annualTimeCost,
		AnnualIncidentCost: annualIncidentCost,
		BaselineTotal:      baselineTotal,
		Basic:              planResult(baselineTotal-basicTotal, basicFee),
		Core:               planResult(baselineTotal-coreTotal, coreFee),
	}, nil
}

func planResult(savings, fee float64) PlanResult {
	r := PlanResult{
		AnnualFee:   fee,
		Savings:     savings,
		NetAfterFee: savings - fee,
	}
	// 节省不为正则无法回本，回本周期记为 N/A
	if savings > 0 {
		months := fee / savings * 12
		r.PaybackMonths = &months
	}
	return r
}
