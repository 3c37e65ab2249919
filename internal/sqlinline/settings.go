package sqlinline

const QSelectSettings = `--sql 8b4500e6-8ce3-4947-8a5a-b6d8d6c69930
select key, value
from settings;
`

const QUpsertSetting = `--sql a266b55e-af74-411a-b4d2-587a6ede69ce
insert into settings(key, value, updated_at)
values ($1::text, $2::text, now())
on conflict (key) do update set value = excluded.value, updated_at = now();
`
