// Package prompts builds the deterministic prompts sent to generation
// providers. Prompt text is assembled purely from its inputs so that the
// same analysis and profile always produce the same prompt, and every
// record carries the prompt version it was built with.
package prompts

// Version identifies the prompt generation. Recorded in the audit section
// of every metadata record; bump on any change to prompt wording or
// response schemas.
const Version = "2026-08-1"
