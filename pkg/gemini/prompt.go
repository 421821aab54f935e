package gemini

import (
	"fmt"
	"strings"
)

// NoSpecifications is embedded in the prompt when the user gave no extra constraints.
const NoSpecifications = "None provided."

// planPromptTemplate arguments: user input, specifications, tone.
const planPromptTemplate = `You are an AI assistant named 'MOM' (Manager of Moments). Your role is to be a neutral, efficient, and motivating personal wellness coach for a student. Your goal is to create a daily plan that integrates productivity, physical movement, and mental wellness.

User's input (syllabus, tasks, goals):
---
%s
---

Additional Specifications from the user (e.g., specific chapters, meeting times, constraints):
---
%s
---

Based on the user's input and specifications, create a structured daily schedule. Follow these rules:
1.  Start the day around 9:00 AM.
2.  Incorporate all user-provided specifications, such as fixed meeting times or specific tasks.
3.  Schedule focused work blocks ('Productivity') for 60-90 minutes each.
4.  After each focused work block, schedule a 5-10 minute break.
5.  Alternate breaks between 'Physical' activities (e.g., 'Gentle neck stretches', 'Walk around and get water') and 'Mental' wellness activities (e.g., 'Mindful breathing for 3 minutes', 'Listen to a favorite calm song').
6.  Include a longer lunch break.
7.  The user has requested the notification tone to be: **'%s'**.
8.  For each task, create a 'notificationText' that is clear, concise, and serves as an effective reminder, strictly adhering to the requested tone.
    - If tone is 'Neutral & Professional', be direct and clear (e.g., 'Scheduled block for Math assignment begins now.').
    - If tone is 'Firm & Motivating', be encouraging but direct (e.g., 'Let's go! Time to crush that Math assignment. You've got this.').
    - If tone is 'Gentle & Encouraging', be soft and supportive (e.g., 'It's time for your math assignment. Remember to be kind to yourself as you work.').
9.  Output *only* a valid JSON array of objects that strictly adheres to the provided schema. Do not include markdown formatting or any text outside the JSON array.`

// BuildPlanPrompt builds the full daily-plan prompt. The user input is embedded verbatim.
func BuildPlanPrompt(userInput, specifications, tone string) string {
	if strings.TrimSpace(specifications) == "" {
		specifications = NoSpecifications
	}
	return fmt.Sprintf(planPromptTemplate, userInput, specifications, tone)
}

// PlanResponseSchema returns the declared output contract: an array of plan items.
func PlanResponseSchema() *Schema {
	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"time": {
					Type:        TypeString,
					Description: "The start time for the task, e.g., '9:00 AM'.",
				},
				"task": {
					Type:        TypeString,
					Description: "A short, actionable description of the task.",
				},
				"category": {
					Type:        TypeString,
					Enum:        []string{"Productivity", "Physical", "Mental"},
					Description: "The category of the task.",
				},
				"duration": {
					Type:        TypeNumber,
					Description: "The duration of the task in minutes.",
				},
				"notificationText": {
					Type:        TypeString,
					Description: "A short, clear, and motivational notification message for this task, adhering to the user's requested tone. It should be an effective reminder.",
				},
			},
			Required:         PlanItemFields,
			PropertyOrdering: PlanItemFields,
		},
	}
}

// PlanItemFields are the required keys of every generated plan item.
var PlanItemFields = []string{"time", "task", "category", "duration", "notificationText"}
