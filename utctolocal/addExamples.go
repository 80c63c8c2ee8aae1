package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message.
func addExamples(ps *param.PSet) error {
	ps.AddExample(`utctolocal`,
		"This will prompt for a UTC time, read it from the terminal"+
			" and show the equivalent local time."+
			"\n\n"+
			"If you enter '2024-06-15 10:30:00' and your timezone is two"+
			" hours ahead of UTC it will print '15/06/2024 12:30:00PM'")
	ps.AddExample(`echo "2024-06-15 00:05:00" | utctolocal`,
		"This will read the UTC time from the pipe; no prompt is shown.")
	ps.AddExample(`utctolocal -dt "2024-06-15 10:30:00" -to-zone Asia/Tokyo`,
		"This will show the time in Tokyo rather than the local"+
			" timezone: '15/06/2024 07:30:00PM'")
	ps.AddExample(`utctolocal -dt "2024-06-15 10:30:00" -fmt-iso`,
		"This will show the local time in ISO 8601 format.")

	return nil
}
