package mcp

const serverInstructions = `jobtrail tracks job searches: Searches own Opportunities, Recruiters, Online Resources, and an Activity Log.

Core concepts:
- Search: one named job-hunting campaign. Exactly one search is active at a time; mutations apply to it. Closing a search archives it (reversible); deleting is permanent.
- Opportunity: one employer/role pursuit with a status (saved, applied, interview, offer, rejected, closed). Changing the status stamps the last-changed date and writes an automated log entry.
- Interviews: adding one moves the opportunity to the interview status; deleting the last one reverts it to applied.
- Activity Log: automated status-change entries plus manual entries (phone_call, email, interview, application, follow_up, other), listed newest first.

Typical flow: create_search, add_opportunity, set_status as things progress, add_interview when scheduled, list_opportunities / list_log to review, export_search or export_log to produce files.`
