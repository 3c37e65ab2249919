package sqlinline

const QInsertDonation = `--sql b286ed30-fb69-4ac4-8e49-5fa3715909c2
insert into donations(transaction_id, amount_cents, donor_name, donor_email, button_id, created_at)
values ($1::text, $2::bigint, $3::text, $4::text, $5::text, now())
returning id;
`

const QDonationTotals = `--sql 279fea5a-c2c0-4952-92be-211e3df30721
select coalesce(sum(amount_cents), 0)::bigint, count(*)::bigint
from donations;
`

const QListDonations = `--sql c9cb90c7-7da0-49b6-ba2f-5df1368f99f9
select id, transaction_id, amount_cents, donor_name, donor_email, button_id, created_at
from donations
order by created_at desc;
`
