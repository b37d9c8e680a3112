package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "Resume Matcher server base URL")
	resumePath := flag.String("file", "", "Path to the resume to upload")
	jobDescription := flag.String("job", "", "Job description text")
	timeout := flag.Duration("timeout", 30*time.Second, "Request timeout")
	flag.Parse()

	if *resumePath == "" {
		log.Fatal("❌ -file is required")
	}

	code, body, err := uploadResume(*serverURL, *resumePath, *jobDescription, *timeout)
	if err != nil {
		log.Fatalf("❌ Upload failed: %v", err)
	}

	fmt.Println(string(body))
	if code < 200 || code >= 300 {
		log.Printf("❌ Server responded with status %d", code)
		os.Exit(1)
	}
}

// uploadResume posts the resume and job description to the /upload
// endpoint and returns the status code and raw response body.
func uploadResume(serverURL, resumePath, jobDescription string, timeout time.Duration) (int, []byte, error) {
	if _, err := os.Stat(resumePath); err != nil {
		return 0, nil, fmt.Errorf("failed to open resume: %w", err)
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("jobDescription", jobDescription)

	agent := fiber.Post(strings.TrimRight(serverURL, "/")+"/upload").
		Timeout(timeout).
		SendFile(resumePath, "resume").
		MultipartForm(args)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Join(errs...)
	}

	return code, body, nil
}
