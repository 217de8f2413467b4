package main

import "github.com/ai-interviewer/backend/internal/cli"

func main() {
	cli.Execute()
}
