package strengthapi

import "github.com/5w1tchy/passcheck-api/internal/strength"

type analyzeRequest struct {
	Password string `json:"password"`
}

type analyzeResponse struct {
	strength.Result
	TimeToCrack string `json:"timeToCrack"`
}

type generateRequest struct {
	Length int `json:"length"`
}

type generateResponse struct {
	Password string          `json:"password"`
	Analysis analyzeResponse `json:"analysis"`
}
