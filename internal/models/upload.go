package models

const UploadReceivedMessage = "Received resume and job description!"

type UploadResponse struct {
	Message        string `json:"message"`
	ResumePath     string `json:"resumePath"`
	JobDescription string `json:"jobDescription"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
