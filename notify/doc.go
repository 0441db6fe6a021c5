/*
Package notify emails the administrator when the poll password changes.

Delivery goes to one fixed recipient through an authenticated SMTP relay
(STARTTLS, port 587 by default). The notification is best-effort and
out-of-band: absence of configured credentials is a Skipped outcome rather
than an error, and a delivery failure never blocks or reverses the
password change that triggered it.
*/
package notify
