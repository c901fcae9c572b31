package model

// SubmissionState 提交状态
type SubmissionState string

// SubmissionPending 等待审批；审批完成后提交直接出队，不保留终态
const SubmissionPending SubmissionState = "PENDING"

// Submission 供应商入库提交，等待人工审批
type Submission struct {
	ID          string          `json:"id"`
	SubmittedAt string          `json:"submittedAt"`
	Supplier    string          `json:"supplier"`
	Country     string          `json:"country"`
	Material    string          `json:"material"`
	CertBody    string          `json:"certBody"`
	CertNo      string          `json:"certNo"`
	ExpiryDate  string          `json:"expiryDate"`
	FileName    string          `json:"fileName"`
	Note        string          `json:"note"`
	State       SubmissionState `json:"state"`
}

// IntakeGuess 文件名模拟提取出的证书字段
type IntakeGuess struct {
	Supplier   string `json:"supplier"`
	Country    string `json:"country"`
	Material   string `json:"material"`
	CertBody   string `json:"certBody"`
	CertNo     string `json:"certNo"`
	ExpiryDate string `json:"expiryDate"`
}
