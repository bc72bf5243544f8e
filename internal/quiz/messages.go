package quiz

const msgQuestion = "Q: %s\n"

const msgOption = "%d. %s\n"

const msgCorrect = "Correct\n\n"

const msgIncorrectWithAnswer = "Incorrect. The correct answer is: %d\n\n"

const msgInvalidOption = "Invalid option. Please enter a valid number or 'q' to quit.\n\n"

const msgScore = "Score: %d/%d\n"

const msgDefinition = "Definition: %s\n"

const msgIncorrect = "Incorrect.\n"

const msgTimeout = "Please answer with %d seconds\n"

const msgInvalidTerm = "Please enter a number 1-4 or 'q' to quit the program\n"

const msgDrillIncomplete = "Incomplete: User quit the drill. Score: %d/%d\n"

const msgDrillComplete = "Complete: Score - %d/%d\n"
