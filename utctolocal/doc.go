/*
The utctolocal program reads a date and time in UTC, in the form
'yyyy-mm-dd HH:MM:SS', and prints the equivalent time in the local
timezone in the form 'DD/MM/YYYY hh:mm:ssAM'. It is useful for reading
the timestamps in log files written by servers running on UTC.
*/
package main
