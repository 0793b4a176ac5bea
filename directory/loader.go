package directory

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/brightwood-pta/directorybackend/models"
)

// LoadStudents reads the directory CSV from a local path or an http(s) URL
// and parses it. Transport failure is fatal to the load and surfaces to the
// caller; malformed individual rows are handled inside ParseCSV.
func LoadStudents(source string) ([]models.Student, error) {
	csvText, err := readSource(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory data from %s: %w", source, err)
	}
	return ParseCSV(csvText), nil
}

func readSource(source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Get(source)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("failed to fetch data: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
