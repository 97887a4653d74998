package domain

import "fmt"

var (
	Venues = []string{"ICML", "NeurIPS", "ICLR"}
	Topics = []string{"Deep Learning", "Reinforcement Learning", "Computer Vision", "NLP", "Theory"}
	Years  = []int{2022, 2023, 2024}
)

type Paper struct {
	ID    string `json:"paper_id" yaml:"paper_id"`
	Title string `json:"title" yaml:"title"`
	Venue string `json:"venue" yaml:"venue"`
	Topic string `json:"topic" yaml:"topic"`
	Year  int    `json:"year" yaml:"year"`
}

// PaperID formats the sequential identifier for the i-th generated paper.
func PaperID(i int) string {
	return fmt.Sprintf("paper_%03d", i)
}

func PaperTitle(i int) string {
	return fmt.Sprintf("Research Paper %d: Advanced ML Methods", i+1)
}
