package speech

import "strings"

// Command is a recognized voice action.
type Command int

const (
	CommandUnknown Command = iota
	CommandTeacherLogin
	CommandStudentLogin
	CommandBack
	CommandHelp
)

// HelpText lists the commands the recognizer understands, spoken in
// response to "help".
const HelpText = "You can say: Teacher login, Student login, Back, or Help"

// NotRecognizedText is spoken when an utterance matches nothing.
const NotRecognizedText = "Command not recognized. Say help for available commands."

// ClassifyCommand maps an utterance to a Command by substring match.
// Priority order matters: "teacher" wins over "student", which wins over
// "back"/"return", which wins over "help".
func ClassifyCommand(utterance string) Command {
	c := strings.ToLower(strings.TrimSpace(utterance))
	switch {
	case strings.Contains(c, "teacher"):
		return CommandTeacherLogin
	case strings.Contains(c, "student"):
		return CommandStudentLogin
	case strings.Contains(c, "back"), strings.Contains(c, "return"):
		return CommandBack
	case strings.Contains(c, "help"):
		return CommandHelp
	}
	return CommandUnknown
}
