package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with plancal",
		Content: topicQuickstart,
	},
	{
		Name:    "format",
		Title:   "Plan File Format",
		Summary: "Weekly and flat dialects, dates, and verse references",
		Content: topicFormat,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "plancal.yaml fields, defaults, and environment variables",
		Content: topicConfig,
	},
	{
		Name:    "export",
		Title:   "Calendar Export",
		Summary: "Event layout, memory-verse mode, and ESV text enrichment",
		Content: topicExport,
	},
}

const topicQuickstart = `Quick Start
===========

1. Scaffold a project:

    plancal init

   This creates plancal.yaml and an example plan.txt.

2. Edit plan.txt, or point -i at an existing plan.

3. Preview what will be exported:

    plancal export -i plan.txt --dry-run

4. Write the calendar:

    plancal export -i plan.txt -o plan.ics

5. Import plan.ics into any calendar application.

CLI Flags
---------

  plancal export -i <plan> -o <file.ics>   Export every reading and memory verse
  plancal export ... -m                    Export memory verses only
  plancal export ... --year 2024           Override the plan year
  plancal export ... --dialect flat        Parse a flat plan
  plancal export ... --enrich              Fetch memory verse text from the ESV API
  plancal export ... --dry-run             Print the parsed plan, write nothing
  plancal export ... --debug               Verbose logging to stderr
  plancal init [dir]                       Scaffold plancal.yaml and plan.txt
  plancal docs [topic]                     Show documentation
`

const topicFormat = `Plan File Format
================

Plans are plain text, one entry per line. Blank lines are ignored and
surrounding whitespace is trimmed.

Weekly dialect (default)
------------------------

    WEEK 1
    Jan 3, Genesis 1-2
    Jan 4, Genesis 3-5 | Matthew 1
    Memory Verse: John 1:1

  WEEK <n>            Starts a new week. The line itself is the week label.
                      Case does not matter.
  <date>,<verses>     A reading line. Everything before the first comma
                      is the date, everything after is the reference list.
  Memory Verse: <ref> The week's memory verse. Only the first one counts,
                      and only its first passage is used.

Lines after a memory verse and before the next WEEK heading are ignored.
Readings before the first WEEK heading form an unlabelled week.

A week's start date is the first valid date among its reading lines; it
ends six days later.

Flat dialect
------------

Every line is a reading line. Headings are skipped.

Dates
-----

Short or long month names followed by a day: "Jan 3", "January 3",
"jan. 3". The year comes from configuration. Dates that do not exist in
that year (for example "Feb 29" in 2022) are reported and the reading is
kept without a calendar event.

References
----------

  Genesis 1           whole chapter
  John 3:16           single verse
  Romans 8:28-39      verse range
  1 Corinthians 13    numbered book
  Song of Solomon 2   multi-word book

Separate several passages on one line with "|"; they share the line's
date. A chapter range such as "Genesis 1-2" is linked by its first
chapter. Pieces that are not recognizable references are dropped.
`

const topicConfig = `Configuration Reference
=======================

plancal reads plancal.yaml from the current directory, or the file
named by --config. Without a config file, defaults apply and the year
is the current year.

Fields
------

  year                (required) Year used to resolve plan dates.
                      Range 1900-2200.

  dialect             "weekly" (default) or "flat".

  translation         Bible translation code for passage links.
                      Default: ESV

  passage-url         Base URL for passage links.
                      Default: https://www.biblegateway.com/passage/

  esv-api-url         Base URL for memory verse text requests.
                      Default: https://api.esv.org/v3/passage/text/

  fetch-timeout       Seconds allowed per text request. Default: 10

  fetch-concurrency   Maximum concurrent text requests. Default: 4

Flags
-----

--year and --dialect override the file.

Environment
-----------

  ESV_API_TOKEN       Access token for the ESV API. May also be set in a
                      .env file in the current directory or passed with
                      --token.
`

const topicExport = `Calendar Export
===============

plancal writes an iCalendar (.ics) file with all-day events.

Events
------

  Reading         One event per passage on the line's date. The title is
                  the reference; the URL opens the passage online.
                  Readings whose date did not parse are skipped.

  Memory verse    One event per week spanning the week's seven days,
                  titled "Memory Verse: <ref>". Weeks without a start
                  date or memory verse get none.

Reading events come first in plan order, then memory verse events in
week order. With -m only memory verse events are written; flat plans
have none.

Event UIDs are derived from title and date, so re-importing an updated
plan replaces events instead of duplicating them.

Enrichment
----------

When a token is set, each memory verse carries an ESV API request.
--enrich performs those requests in parallel and uses the returned
text as the event description. A failed request is reported and the
event keeps the reference as its description. --enrich without a token
is an error.

Output
------

The output path must end in .ics. The file is written atomically; on
any error no partial file is left behind.
`
